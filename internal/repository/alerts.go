package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"alert-listener-go/internal/models"
)

// AlertsRepository appends enriched alert documents to the store.
// Create-only: no update or merge semantics exist for alert events.
type AlertsRepository struct {
	db     *sql.DB
	table  string
	logger zerolog.Logger
}

func NewAlertsRepository(db *sql.DB, table string, logger zerolog.Logger) *AlertsRepository {
	return &AlertsRepository{
		db:     db,
		table:  table,
		logger: logger,
	}
}

// CreateAlertEvent inserts one alert document keyed by its generated
// identifier. Duplicate alert ids are a constraint violation by design.
func (r *AlertsRepository) CreateAlertEvent(ctx context.Context, event models.AlertEvent) error {
	document, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal alert event: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (alert_id, device_id, status, document, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, r.table)

	_, err = r.db.ExecContext(ctx, query,
		event.AlertID,
		event.DeviceID,
		string(event.Status),
		document,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert alert event %s: %w", event.AlertID, err)
	}

	r.logger.Debug().
		Str("alert_id", event.AlertID).
		Int64("device_id", event.DeviceID).
		Msg("Alert document stored")

	return nil
}
