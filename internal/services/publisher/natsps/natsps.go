package natsps

import (
	"context"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"alert-listener-go/internal/config"
)

// Publisher publishes alert payloads on a NATS subject
type Publisher struct {
	conn *nats.Conn
}

func NewPublisher(cfg *config.Config) (*Publisher, error) {
	opts := []nats.Option{
		nats.Name("alert-listener"),
		nats.Timeout(cfg.NatsConnectTimeout),
		nats.ReconnectWait(cfg.NatsReconnectWait),
		nats.MaxReconnects(cfg.NatsMaxReconnects),
	}

	conn, err := nats.Connect(cfg.NatsURL, opts...)
	if err != nil {
		return nil, err
	}

	log.Info().Str("url", cfg.NatsURL).Msg("NATS connection established")

	return &Publisher{conn: conn}, nil
}

// Publish is fire-and-forget; the NATS client has no per-publish context,
// so the deadline carried by ctx only bounds the caller's wait
func (p *Publisher) Publish(ctx context.Context, channel string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.conn.Publish(channel, payload)
}

func (p *Publisher) Close() error {
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
