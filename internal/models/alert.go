package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// EventTypeSubscriptionValidation is the reserved event type the delivery
// system sends once per subscription before it streams real alerts.
const EventTypeSubscriptionValidation = "Microsoft.EventGrid.SubscriptionValidationEvent"

// Status represents the verdict assigned to an alert
type Status string

const (
	StatusOk    Status = "Ok"
	StatusError Status = "Error"
)

// Alert is the raw payload carried inside a notification envelope.
// Immutable once parsed.
type Alert struct {
	DeviceID  int64   `json:"DeviceId"`
	Image     string  `json:"Image"`
	Latitude  float64 `json:"Latitude"`
	Longitude float64 `json:"Longitude"`
	Name      string  `json:"Name"`
	Text      string  `json:"Text"`
}

// Envelope wraps one Alert with delivery metadata. For the subscription
// validation handshake Data carries a validation code instead of an alert,
// so it stays raw until the processor knows which one it is.
type Envelope struct {
	ID        string          `json:"id"`
	EventType string          `json:"eventType"`
	Subject   string          `json:"subject"`
	EventTime string          `json:"eventTime"`
	Data      json.RawMessage `json:"data"`
}

// ValidationData is the handshake payload embedded in a validation envelope
type ValidationData struct {
	ValidationCode string `json:"validationCode"`
}

// Tag is one label produced by the vision service for an image
type Tag struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// ImageAnalysis is the classification result for one image URL.
// A nil *ImageAnalysis means classification was skipped (invalid URL).
type ImageAnalysis struct {
	Tags []Tag `json:"tags"`
}

// AlertEvent is the enriched alert fanned out to the document store and the
// pub/sub channel. Written once at construction, never mutated.
type AlertEvent struct {
	DeviceID  int64   `json:"deviceId"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"long"`
	Name      string  `json:"name"`
	Status    Status  `json:"status"`
	Text      string  `json:"text"`
	AlertID   string  `json:"alertId"`
}

// NewAlertEvent builds an AlertEvent with a freshly generated identifier.
// Identifiers are never reused, even for logically duplicate inputs.
func NewAlertEvent(alert Alert, status Status, text string) AlertEvent {
	return AlertEvent{
		DeviceID:  alert.DeviceID,
		Latitude:  alert.Latitude,
		Longitude: alert.Longitude,
		Name:      alert.Name,
		Status:    status,
		Text:      text,
		AlertID:   uuid.NewString(),
	}
}

// String returns the canonical JSON serialization used by both sinks
func (e AlertEvent) String() string {
	payload, err := json.Marshal(e)
	if err != nil {
		return ""
	}
	return string(payload)
}
