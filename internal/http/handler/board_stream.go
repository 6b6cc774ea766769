package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"sprintsync.app/retro/common/logger"
	"sprintsync.app/retro/internal/events"
	"sprintsync.app/retro/internal/model"
	"sprintsync.app/retro/internal/service"
)

const (
	defaultStreamBlock = 25 * time.Second
	streamRetryDelay   = 2 * time.Second
)

// BoardStreamHandler pushes board events to browsers as server-sent events.
// A nil subscriber means Redis is not configured and clients keep polling.
type BoardStreamHandler struct {
	subscriber events.Subscriber
	sprints    service.SprintService
	block      time.Duration
	retryDelay time.Duration
}

func NewBoardStreamHandler(subscriber events.Subscriber, sprints service.SprintService) *BoardStreamHandler {
	return &BoardStreamHandler{
		subscriber: subscriber,
		sprints:    sprints,
		block:      defaultStreamBlock,
		retryDelay: streamRetryDelay,
	}
}

type boardFrame struct {
	ID    string           `json:"id"`
	Event model.BoardEvent `json:"event"`
}

func (h *BoardStreamHandler) Stream(c *gin.Context) {
	if h.subscriber == nil {
		fail(c, http.StatusServiceUnavailable, "board streaming is not configured")
		return
	}

	sprintID, ok := pathID(c, "sprintId")
	if !ok {
		return
	}

	ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
		SprintID:  &sprintID,
		Component: "retro.http.board_stream",
	})

	if _, err := h.sprints.Get(ctx, sprintID); err != nil {
		respondError(c, err, "failed to open board stream")
		return
	}

	lastID := c.Query("lastId")
	if lastID == "" {
		lastID = c.GetHeader("Last-Event-ID")
	}
	if lastID == "" {
		lastID = "$"
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		fail(c, http.StatusInternalServerError, "streaming not supported")
		return
	}

	setSSEHeaders(c.Writer)
	c.Status(http.StatusOK)

	sseWrite(c.Writer, "", "ping", "ready")
	flusher.Flush()

	slog.DebugContext(ctx, "board stream opened", "last_id", lastID)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msgs, err := h.subscriber.Read(ctx, sprintID, lastID, h.block)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.WarnContext(ctx, "board stream read failed", "error", err)
			sseWrite(c.Writer, "", "error", map[string]string{"error": "board stream unavailable"})
			flusher.Flush()

			select {
			case <-ctx.Done():
				return
			case <-time.After(h.retryDelay):
			}
			continue
		}

		if len(msgs) == 0 {
			sseWrite(c.Writer, "", "ping", time.Now().UTC().Format(time.RFC3339Nano))
			flusher.Flush()
			continue
		}

		for _, msg := range msgs {
			lastID = msg.ID
			sseWrite(c.Writer, msg.ID, "board", boardFrame{ID: msg.ID, Event: msg.Event})
		}
		flusher.Flush()
	}
}

func setSSEHeaders(w http.ResponseWriter) {
	headers := w.Header()
	headers.Set("Content-Type", "text/event-stream")
	headers.Set("Cache-Control", "no-cache")
	headers.Set("Connection", "keep-alive")
	headers.Set("X-Accel-Buffering", "no")
}

func sseWrite(w http.ResponseWriter, id, event string, data any) {
	payload := marshalPayload(data)
	if id != "" {
		_, _ = fmt.Fprintf(w, "id: %s\n", id)
	}
	if event != "" {
		_, _ = fmt.Fprintf(w, "event: %s\n", event)
	}
	for _, line := range strings.Split(payload, "\n") {
		_, _ = fmt.Fprintf(w, "data: %s\n", line)
	}
	_, _ = fmt.Fprint(w, "\n")
}

func marshalPayload(data any) string {
	switch payload := data.(type) {
	case string:
		return payload
	case []byte:
		return string(payload)
	default:
		bytes, err := json.Marshal(payload)
		if err != nil {
			return fmt.Sprintf("%v", data)
		}
		return string(bytes)
	}
}
