package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"sprintsync.app/retro/common/logger"
	"sprintsync.app/retro/common/metrics"
	"sprintsync.app/retro/internal/model"
)

type RedisPublisher struct {
	client *redis.Client
	maxLen int64
	logger *slog.Logger
}

// NewRedisPublisher returns a publisher that caps every sprint stream at
// roughly maxLen entries. maxLen <= 0 leaves streams uncapped.
func NewRedisPublisher(client *redis.Client, maxLen int64, logger *slog.Logger) *RedisPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisPublisher{
		client: client,
		maxLen: maxLen,
		logger: logger,
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, event model.BoardEvent) error {
	err := p.publish(ctx, event)
	metrics.ObservePublish(err)
	return err
}

func (p *RedisPublisher) publish(ctx context.Context, event model.BoardEvent) error {
	values, err := encode(event)
	if err != nil {
		return err
	}

	args := &redis.XAddArgs{
		Stream: StreamName(event.SprintID),
		Values: values,
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	entryID, err := p.client.XAdd(ctx, args).Result()
	if err != nil {
		return fmt.Errorf("publishing board event: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		SprintID:  &event.SprintID,
		StreamID:  &entryID,
		EventType: logger.Ptr(string(event.Type)),
		Component: "retro.events.publisher",
	})
	p.logger.DebugContext(ctx, "board event published")
	return nil
}

// NopPublisher drops every event. Used when Redis is not configured; clients
// fall back to polling.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, model.BoardEvent) error { return nil }
