package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alert-listener-go/internal/models"
)

func setupMockAlertsDB(t *testing.T) (sqlmock.Sqlmock, *AlertsRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewAlertsRepository(db, "alerts", zerolog.Nop())

	return mock, repo
}

func TestCreateAlertEvent_Success(t *testing.T) {
	mock, repo := setupMockAlertsDB(t)

	event := models.NewAlertEvent(models.Alert{
		DeviceID:  1,
		Latitude:  51.5,
		Longitude: -0.1,
		Name:      "Cam1",
	}, models.StatusError, "person has been spotted! quick, catch them.")

	mock.ExpectExec(`INSERT INTO alerts`).
		WithArgs(event.AlertID, event.DeviceID, "Error", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateAlertEvent(context.Background(), event)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAlertEvent_InsertFailure(t *testing.T) {
	mock, repo := setupMockAlertsDB(t)

	event := models.NewAlertEvent(models.Alert{DeviceID: 2}, models.StatusOk, "non-person object has been spotted.")

	mock.ExpectExec(`INSERT INTO alerts`).
		WithArgs(event.AlertID, event.DeviceID, "Ok", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	err := repo.CreateAlertEvent(context.Background(), event)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), event.AlertID)
	require.NoError(t, mock.ExpectationsWereMet())
}
