package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"alert-listener-go/internal/config"
	"alert-listener-go/internal/logging"
	"alert-listener-go/internal/models"
	"alert-listener-go/internal/services/decision"
)

// Classifier produces a tag set for an image URL, or nil when the URL was
// rejected before reaching the vision service
type Classifier interface {
	Analyze(ctx context.Context, imageURL string) (*models.ImageAnalysis, error)
}

// Publisher fans an alert event out to the configured sinks
type Publisher interface {
	Publish(ctx context.Context, event models.AlertEvent) error
}

// Service runs the per-envelope pipeline: decode, classify, decide, publish
type Service struct {
	classifier Classifier
	publisher  Publisher
	logger     zerolog.Logger
}

func NewService(cfg *config.Config, classifier Classifier, publisher Publisher) *Service {
	return &Service{
		classifier: classifier,
		publisher:  publisher,
		logger:     logging.NewServiceLogger(cfg, "processor"),
	}
}

// ProcessBatch handles envelopes strictly in order. Processing aborts at the
// first failure; events already published are not rolled back, so a batch
// can be partially applied even though the caller sees an error.
func (s *Service) ProcessBatch(ctx context.Context, batch []models.Envelope) error {
	for i, envelope := range batch {
		if err := s.processEnvelope(ctx, envelope); err != nil {
			return fmt.Errorf("envelope %d: %w", i, err)
		}
	}
	return nil
}

func (s *Service) processEnvelope(ctx context.Context, envelope models.Envelope) error {
	s.logger.Info().
		Str("subject", envelope.Subject).
		Str("event_time", envelope.EventTime).
		Msg("Processing envelope")

	var alert models.Alert
	if err := json.Unmarshal(envelope.Data, &alert); err != nil {
		return fmt.Errorf("decode alert payload: %w", err)
	}

	logger := logging.WithDevice(s.logger, alert.DeviceID)
	logger.Info().Str("image", alert.Image).Msg("Alert received, performing analysis")

	analysis, err := s.classifier.Analyze(ctx, alert.Image)
	if err != nil {
		return fmt.Errorf("classify image: %w", err)
	}

	status, text := decision.Decide(analysis)
	if status == models.StatusError {
		logger.Info().
			Float64("confidence", decision.PersonConfidence(analysis)).
			Msg("Alert raised by a person object")
	} else {
		logger.Info().Msg("Alert raised by a non-person object")
	}

	event := models.NewAlertEvent(alert, status, text)
	if err := s.publisher.Publish(ctx, event); err != nil {
		return fmt.Errorf("publish alert %s: %w", event.AlertID, err)
	}

	return nil
}
