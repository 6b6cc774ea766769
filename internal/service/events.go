package service

import (
	"context"
	"log/slog"
	"time"

	"sprintsync.app/retro/internal/model"
)

// EventPublisher pushes board changes to live subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, event model.BoardEvent) error
}

// publish never fails the caller: the mutation is already committed and
// polling clients will pick the change up regardless.
func publish(ctx context.Context, pub EventPublisher, event model.BoardEvent) {
	if pub == nil {
		return
	}
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	if err := pub.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "board event not published",
			"type", event.Type,
			"error", err,
		)
	}
}
