package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Handlers and services enrich the context once, and every log line below them
// carries the board coordinates (sprint_id, feedback_id, user_id).
type LogFields struct {
	SprintID   *int64  // Sprint the request is scoped to
	FeedbackID *int64  // Feedback item being mutated
	UserID     *string // Opaque id of the acting user
	StreamID   *string // Redis stream entry id
	EventType  *string // Board event type (e.g. "upvote.toggled")
	Component  string  // Component name, e.g. "retro.service.upvote"
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
// Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, new LogFields) LogFields {
	result := existing

	if new.SprintID != nil {
		result.SprintID = new.SprintID
	}
	if new.FeedbackID != nil {
		result.FeedbackID = new.FeedbackID
	}
	if new.UserID != nil {
		result.UserID = new.UserID
	}
	if new.StreamID != nil {
		result.StreamID = new.StreamID
	}
	if new.EventType != nil {
		result.EventType = new.EventType
	}
	if new.Component != "" {
		result.Component = new.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{SprintID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}
