package services

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"

	"alert-listener-go/internal/config"
	"alert-listener-go/internal/logging"
	"alert-listener-go/internal/repository"
	"alert-listener-go/internal/services/processor"
	"alert-listener-go/internal/services/publisher"
	"alert-listener-go/internal/services/vision"
)

// Container holds all services
type Container struct {
	Config    *config.Config
	Broker    publisher.Broker
	Publisher *publisher.Service
	Vision    *vision.Client
	Processor *processor.Service

	db *sql.DB
}

// NewContainer wires the pipeline bottom-up: sinks, then publisher, then
// classifier, then the batch processor
func NewContainer(cfg *config.Config) (*Container, error) {
	broker, err := publisher.NewBroker(cfg)
	if err != nil {
		return nil, err
	}

	var store publisher.Store
	var db *sql.DB
	if cfg.StoreEnabled && cfg.DatabaseURL != "" {
		db, err = repository.NewPostgresDB(cfg)
		if err != nil {
			broker.Close()
			return nil, err
		}
		store = repository.NewAlertsRepository(db, cfg.AlertsTable, logging.NewServiceLogger(cfg, "repository"))
	} else {
		log.Info().Msg("Document store sink disabled, publishing to channel only")
	}

	pubSvc := publisher.NewService(cfg, broker, store)
	visionClient := vision.NewClient(cfg)
	procSvc := processor.NewService(cfg, visionClient, pubSvc)

	return &Container{
		Config:    cfg,
		Broker:    broker,
		Publisher: pubSvc,
		Vision:    visionClient,
		Processor: procSvc,
		db:        db,
	}, nil
}

// Shutdown gracefully closes all external connections
func (c *Container) Shutdown(ctx context.Context) error {
	var firstErr error

	if c.Broker != nil {
		if err := c.Broker.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
