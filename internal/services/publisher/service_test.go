package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alert-listener-go/internal/config"
	"alert-listener-go/internal/models"
)

type fakeBroker struct {
	channel  string
	payloads [][]byte
	err      error
}

func (f *fakeBroker) Publish(_ context.Context, channel string, payload []byte) error {
	if f.err != nil {
		return f.err
	}
	f.channel = channel
	f.payloads = append(f.payloads, payload)
	return nil
}

func (f *fakeBroker) Close() error { return nil }

type fakeStore struct {
	created []models.AlertEvent
	err     error
}

func (f *fakeStore) CreateAlertEvent(_ context.Context, event models.AlertEvent) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, event)
	return nil
}

func testPublisherConfig() *config.Config {
	return &config.Config{
		ListenerID:     "listener-test",
		AlertsChannel:  "alerts",
		PublishTimeout: time.Second,
	}
}

func TestPublish_WritesBothSinks(t *testing.T) {
	broker := &fakeBroker{}
	store := &fakeStore{}
	svc := NewService(testPublisherConfig(), broker, store)

	event := models.NewAlertEvent(models.Alert{DeviceID: 1, Name: "Cam1"}, models.StatusError, "person has been spotted! quick, catch them.")

	require.NoError(t, svc.Publish(context.Background(), event))

	require.Len(t, store.created, 1)
	assert.Equal(t, event, store.created[0])

	assert.Equal(t, "alerts", broker.channel)
	require.Len(t, broker.payloads, 1)

	var published models.AlertEvent
	require.NoError(t, json.Unmarshal(broker.payloads[0], &published))
	assert.Equal(t, event, published)
}

func TestPublish_StoreDisabledPublishesChannelOnly(t *testing.T) {
	broker := &fakeBroker{}
	svc := NewService(testPublisherConfig(), broker, nil)

	event := models.NewAlertEvent(models.Alert{DeviceID: 2}, models.StatusOk, "non-person object has been spotted.")

	require.NoError(t, svc.Publish(context.Background(), event))
	require.Len(t, broker.payloads, 1)
}

func TestPublish_StoreFailureSkipsChannel(t *testing.T) {
	broker := &fakeBroker{}
	store := &fakeStore{err: errors.New("insert failed")}
	svc := NewService(testPublisherConfig(), broker, store)

	event := models.NewAlertEvent(models.Alert{DeviceID: 3}, models.StatusOk, "non-person object has been spotted.")

	err := svc.Publish(context.Background(), event)

	assert.Error(t, err)
	assert.Empty(t, broker.payloads, "channel publish must not run after a store failure")
}

func TestPublish_ChannelFailureAfterStoreSuccessPropagates(t *testing.T) {
	broker := &fakeBroker{err: errors.New("broker unavailable")}
	store := &fakeStore{}
	svc := NewService(testPublisherConfig(), broker, store)

	event := models.NewAlertEvent(models.Alert{DeviceID: 4}, models.StatusOk, "non-person object has been spotted.")

	err := svc.Publish(context.Background(), event)

	// The stored document is not rolled back; the sinks are left divergent.
	assert.Error(t, err)
	assert.Len(t, store.created, 1)
}

func TestNewBroker_UnknownDriver(t *testing.T) {
	cfg := testPublisherConfig()
	cfg.BrokerDriver = "kafka"

	broker, err := NewBroker(cfg)

	assert.Error(t, err)
	assert.Nil(t, broker)
}
