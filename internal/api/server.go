package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"alert-listener-go/internal/api/handlers"
	"alert-listener-go/internal/config"
)

type Server struct {
	config *config.Config
	router *gin.Engine
	server *http.Server

	healthHandler  *handlers.HealthHandler
	webhookHandler *handlers.WebhookHandler
}

func NewServer(cfg *config.Config, processor handlers.BatchProcessor) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	return &Server{
		config:         cfg,
		router:         router,
		healthHandler:  handlers.NewHealthHandler(cfg.ListenerID, cfg.Version),
		webhookHandler: handlers.NewWebhookHandler(processor),
	}
}

func (s *Server) Setup() error {
	s.setupMiddleware()

	s.setupRoutes()

	s.setupSwagger()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.config.Port),
		Handler: s.router,
	}

	return nil
}

func (s *Server) Start() error {
	log.Info().Int("port", s.config.Port).Msg("Starting Alert Listener API")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Router exposes the gin engine for handler tests
func (s *Server) Router() *gin.Engine {
	return s.router
}
