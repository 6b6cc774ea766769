package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Subscriber follows one sprint's stream.
type Subscriber interface {
	// Read blocks up to block for entries after lastID ("$" for only new
	// ones). It returns an empty slice and no error when the wait times out.
	Read(ctx context.Context, sprintID int64, lastID string, block time.Duration) ([]Message, error)
}

type RedisSubscriber struct {
	client *redis.Client
	batch  int64
}

func NewRedisSubscriber(client *redis.Client) *RedisSubscriber {
	return &RedisSubscriber{client: client, batch: 100}
}

func (s *RedisSubscriber) Read(ctx context.Context, sprintID int64, lastID string, block time.Duration) ([]Message, error) {
	if lastID == "" {
		lastID = "$"
	}

	res, err := s.client.XRead(ctx, &redis.XReadArgs{
		Streams: []string{StreamName(sprintID), lastID},
		Block:   block,
		Count:   s.batch,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading board stream: %w", err)
	}

	var out []Message
	for _, stream := range res {
		for _, entry := range stream.Messages {
			msg, err := decode(entry)
			if err != nil {
				slog.WarnContext(ctx, "skipping malformed board event", "entry_id", entry.ID, "error", err)
				continue
			}
			out = append(out, msg)
		}
	}
	return out, nil
}
