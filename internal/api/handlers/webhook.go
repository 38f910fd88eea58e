package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"alert-listener-go/internal/logging"
	"alert-listener-go/internal/models"
)

// FailureBody is the fixed error body returned on the first unrecoverable
// per-event failure. The caller cannot distinguish which envelope failed.
const FailureBody = "Unable to process image url."

// BatchProcessor handles a non-handshake notification batch
type BatchProcessor interface {
	ProcessBatch(ctx context.Context, batch []models.Envelope) error
}

type WebhookHandler struct {
	processor BatchProcessor
}

func NewWebhookHandler(processor BatchProcessor) *WebhookHandler {
	return &WebhookHandler{processor: processor}
}

// @Summary Ingest alert notifications
// @Description Accepts a notification batch from the event delivery system. Answers the subscription-validation handshake when the first element carries the reserved validation event type, otherwise classifies and fans out every alert in the batch.
// @Tags alerts
// @Accept json
// @Produce json
// @Param batch body []models.Envelope true "Notification batch"
// @Success 200 "Batch processed, or handshake echoed as {validationResponse}"
// @Failure 500 {string} string "Unable to process image url."
// @Router /alerts [post]
func (h *WebhookHandler) CreateAlert(c *gin.Context) {
	var batch []models.Envelope
	if err := c.ShouldBindJSON(&batch); err != nil {
		logging.Error(c).Err(err).Msg("Malformed notification batch")
		c.String(http.StatusInternalServerError, FailureBody)
		return
	}

	logging.Info(c).Int("batch_size", len(batch)).Msg("New notification batch received")

	// Subscription validation handshake: echo the code, process nothing.
	// Handled idempotently on every request where it appears first.
	if len(batch) > 0 && strings.EqualFold(batch[0].EventType, models.EventTypeSubscriptionValidation) {
		var data models.ValidationData
		if err := json.Unmarshal(batch[0].Data, &data); err != nil {
			logging.Error(c).Err(err).Msg("Malformed validation envelope")
			c.String(http.StatusInternalServerError, FailureBody)
			return
		}

		logging.Info(c).Msg("Validation request received")
		c.JSON(http.StatusOK, gin.H{"validationResponse": data.ValidationCode})
		return
	}

	if err := h.processor.ProcessBatch(c.Request.Context(), batch); err != nil {
		logging.Error(c).Err(err).Msg("Batch processing aborted")
		c.String(http.StatusInternalServerError, FailureBody)
		return
	}

	c.Status(http.StatusOK)
}
