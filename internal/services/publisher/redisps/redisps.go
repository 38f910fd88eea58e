package redisps

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"alert-listener-go/internal/config"
)

// Publisher publishes alert payloads on a Redis pub/sub channel.
// Delivery is at-most-once: no acknowledgment tracking, no retry.
type Publisher struct {
	client *redis.Client
}

func NewPublisher(cfg *config.Config) (*Publisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	log.Info().Str("addr", cfg.RedisAddr).Msg("Redis connection established")

	return &Publisher{client: client}, nil
}

func (p *Publisher) Publish(ctx context.Context, channel string, payload []byte) error {
	return p.client.Publish(ctx, channel, payload).Err()
}

func (p *Publisher) Close() error {
	return p.client.Close()
}
