package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	ListenerID string
	Version    string
}

func NewHealthHandler(listenerID, version string) *HealthHandler {
	return &HealthHandler{ListenerID: listenerID, Version: version}
}

type HealthResponse struct {
	Status     string `json:"status" example:"healthy"`
	ListenerID string `json:"listener_id" example:"listener-1"`
}

type ListenerInfoResponse struct {
	ListenerID   string   `json:"listener_id" example:"listener-1"`
	Status       string   `json:"status" example:"running"`
	Version      string   `json:"version" example:"1.0.0"`
	Capabilities []string `json:"capabilities"`
}

// @Summary Health check
// @Description Check if the listener is healthy and responsive
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:     "healthy",
		ListenerID: h.ListenerID,
	})
}

// @Summary Listener information
// @Description Get basic listener information and capabilities
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} ListenerInfoResponse
// @Router / [get]
func (h *HealthHandler) ListenerInfo(c *gin.Context) {
	c.JSON(http.StatusOK, ListenerInfoResponse{
		ListenerID: h.ListenerID,
		Status:     "running",
		Version:    h.Version,
		Capabilities: []string{
			"subscription_validation",
			"vision_classification",
			"alert_fanout",
		},
	})
}
