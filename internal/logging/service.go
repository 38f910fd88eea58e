package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"alert-listener-go/internal/config"
)

func NewServiceLogger(cfg *config.Config, service string) zerolog.Logger {
	return log.With().Str("listener_id", cfg.ListenerID).Str("service", service).Logger()
}

func WithDevice(base zerolog.Logger, deviceID int64) zerolog.Logger {
	return base.With().Int64("device_id", deviceID).Logger()
}
