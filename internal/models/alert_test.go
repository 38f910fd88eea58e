package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlertEvent_CopiesAlertFields(t *testing.T) {
	alert := Alert{
		DeviceID:  7,
		Image:     "https://example.com/photo01.jpg",
		Latitude:  51.5,
		Longitude: -0.1,
		Name:      "Cam7",
		Text:      "Alarm event raised",
	}

	event := NewAlertEvent(alert, StatusError, "person has been spotted! quick, catch them.")

	assert.Equal(t, int64(7), event.DeviceID)
	assert.Equal(t, 51.5, event.Latitude)
	assert.Equal(t, -0.1, event.Longitude)
	assert.Equal(t, "Cam7", event.Name)
	assert.Equal(t, StatusError, event.Status)
	assert.Equal(t, "person has been spotted! quick, catch them.", event.Text)
	assert.NotEmpty(t, event.AlertID)
}

func TestNewAlertEvent_FreshIdentifierPerEvent(t *testing.T) {
	alert := Alert{DeviceID: 1, Name: "Cam1"}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		event := NewAlertEvent(alert, StatusOk, "non-person object has been spotted.")
		require.False(t, seen[event.AlertID], "alert id reused: %s", event.AlertID)
		seen[event.AlertID] = true
	}
}

func TestAlertEvent_RoundTrip(t *testing.T) {
	original := NewAlertEvent(Alert{
		DeviceID:  3,
		Latitude:  53.8,
		Longitude: -3.0,
		Name:      "Cam3",
	}, StatusOk, "non-person object has been spotted.")

	var decoded AlertEvent
	require.NoError(t, json.Unmarshal([]byte(original.String()), &decoded))

	assert.Equal(t, original, decoded)
}

func TestAlertEvent_SerializedFieldNames(t *testing.T) {
	event := NewAlertEvent(Alert{DeviceID: 1}, StatusOk, "non-person object has been spotted.")

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(event.String()), &raw))

	for _, key := range []string{"deviceId", "lat", "long", "name", "status", "text", "alertId"} {
		assert.Contains(t, raw, key)
	}
}

func TestEnvelope_DecodesAlertPayload(t *testing.T) {
	body := `{
		"id": "e-1",
		"eventType": "recordInserted",
		"subject": "Alarm",
		"eventTime": "2020-01-02T15:04:05Z",
		"data": {"DeviceId": 4, "Image": "https://x/img.jpg", "Latitude": 51.5, "Longitude": -0.1, "Name": "Cam4", "Text": "hi"}
	}`

	var envelope Envelope
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	assert.Equal(t, "recordInserted", envelope.EventType)

	var alert Alert
	require.NoError(t, json.Unmarshal(envelope.Data, &alert))
	assert.Equal(t, int64(4), alert.DeviceID)
	assert.Equal(t, "https://x/img.jpg", alert.Image)
	assert.Equal(t, "Cam4", alert.Name)
}
