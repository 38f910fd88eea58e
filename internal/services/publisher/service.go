package publisher

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"alert-listener-go/internal/config"
	"alert-listener-go/internal/logging"
	"alert-listener-go/internal/models"
	"alert-listener-go/internal/services/publisher/natsps"
	"alert-listener-go/internal/services/publisher/redisps"
)

// Broker publishes serialized alert events on a named channel
type Broker interface {
	Publish(ctx context.Context, channel string, payload []byte) error
	Close() error
}

// Store appends alert events to the durable document sink
type Store interface {
	CreateAlertEvent(ctx context.Context, event models.AlertEvent) error
}

// NewBroker selects the pub/sub backend from configuration
func NewBroker(cfg *config.Config) (Broker, error) {
	switch cfg.BrokerDriver {
	case "redis", "":
		return redisps.NewPublisher(cfg)
	case "nats":
		return natsps.NewPublisher(cfg)
	default:
		return nil, fmt.Errorf("unknown broker driver %q", cfg.BrokerDriver)
	}
}

// Service fans one alert event out to the document store and the pub/sub
// channel. The two sinks are independent; there is no two-phase commit.
type Service struct {
	cfg    *config.Config
	broker Broker
	store  Store // nil when the document sink is disabled
	logger zerolog.Logger
}

func NewService(cfg *config.Config, broker Broker, store Store) *Service {
	return &Service{
		cfg:    cfg,
		broker: broker,
		store:  store,
		logger: logging.NewServiceLogger(cfg, "publisher"),
	}
}

// Publish writes the event to the document store first, then publishes its
// canonical serialization on the alerts channel. A store success followed by
// a publish failure leaves the sinks inconsistent; that divergence is logged
// before the failure propagates. Nothing is rolled back.
func (s *Service) Publish(ctx context.Context, event models.AlertEvent) error {
	stored := false

	if s.store != nil {
		storeCtx, cancel := context.WithTimeout(ctx, s.cfg.PublishTimeout)
		err := s.store.CreateAlertEvent(storeCtx, event)
		cancel()
		if err != nil {
			return fmt.Errorf("store write for alert %s: %w", event.AlertID, err)
		}
		stored = true
	}

	pubCtx, cancel := context.WithTimeout(ctx, s.cfg.PublishTimeout)
	defer cancel()

	if err := s.broker.Publish(pubCtx, s.cfg.AlertsChannel, []byte(event.String())); err != nil {
		if stored {
			s.logger.Error().
				Str("alert_id", event.AlertID).
				Err(err).
				Msg("Sinks diverged: alert persisted but channel publish failed")
		}
		return fmt.Errorf("channel publish for alert %s: %w", event.AlertID, err)
	}

	s.logger.Info().
		Str("alert_id", event.AlertID).
		Str("status", string(event.Status)).
		Str("channel", s.cfg.AlertsChannel).
		Msg("Alert sent for further processing")

	return nil
}
