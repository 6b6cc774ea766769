// Package events moves board change notifications through per-sprint Redis
// streams: services publish with XADD, the SSE handler follows with XREAD.
package events

import (
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"sprintsync.app/retro/common/id"
	"sprintsync.app/retro/internal/model"
)

const (
	fieldType    = "type"
	fieldPayload = "payload"
)

// StreamName is the Redis stream holding one sprint's board events.
func StreamName(sprintID int64) string {
	return "retro:sprint-" + id.String(sprintID)
}

// Message is a board event together with its stream entry id, which clients
// send back as lastId to resume.
type Message struct {
	ID    string
	Event model.BoardEvent
}

func encode(event model.BoardEvent) (map[string]any, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("encoding board event: %w", err)
	}
	return map[string]any{
		fieldType:    string(event.Type),
		fieldPayload: string(payload),
	}, nil
}

func decode(msg redis.XMessage) (Message, error) {
	raw, ok := msg.Values[fieldPayload].(string)
	if !ok {
		return Message{}, fmt.Errorf("stream entry %s has no payload", msg.ID)
	}
	var event model.BoardEvent
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		return Message{}, fmt.Errorf("decoding stream entry %s: %w", msg.ID, err)
	}
	return Message{ID: msg.ID, Event: event}, nil
}
