package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"sprintsync.app/retro/internal/events"
	"sprintsync.app/retro/internal/http/handler"
	"sprintsync.app/retro/internal/model"
	"sprintsync.app/retro/internal/service"
)

var _ = Describe("BoardStreamHandler", func() {
	var (
		router  *gin.Engine
		sprints *mockSprintService
		sub     *mockSubscriber
	)

	BeforeEach(func() {
		router = gin.New()
		sprints = &mockSprintService{}
		sub = &mockSubscriber{}
	})

	serve := func(ctx context.Context, path string, headers map[string]string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil).WithContext(ctx)
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("returns 503 when streaming is not configured", func() {
		h := handler.NewBoardStreamHandler(nil, sprints)
		router.GET("/stream/:sprintId", h.Stream)

		w := serve(context.Background(), "/stream/11", nil)

		Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
		Expect(decodeEnvelope(w).Success).To(BeFalse())
	})

	It("returns 404 for an unknown sprint", func() {
		sprints.getFn = func(context.Context, int64) (*model.Sprint, error) {
			return nil, service.ErrSprintNotFound
		}
		h := handler.NewBoardStreamHandler(sub, sprints)
		router.GET("/stream/:sprintId", h.Stream)

		w := serve(context.Background(), "/stream/11", nil)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("writes board events and resumes from the last delivered id", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var seen []string
		calls := 0
		sub.readFn = func(ctx context.Context, sprintID int64, lastID string, _ time.Duration) ([]events.Message, error) {
			Expect(sprintID).To(Equal(int64(11)))
			seen = append(seen, lastID)
			calls++
			switch calls {
			case 1:
				return []events.Message{{
					ID: "1700000000000-0",
					Event: model.BoardEvent{
						Type:       model.EventUpvoteToggled,
						SprintID:   11,
						FeedbackID: 21,
					},
				}}, nil
			case 2:
				return nil, nil
			default:
				cancel()
				return nil, ctx.Err()
			}
		}
		h := handler.NewBoardStreamHandler(sub, sprints)
		router.GET("/stream/:sprintId", h.Stream)

		w := serve(ctx, "/stream/11?lastId=1699999999999-0", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(Equal("text/event-stream"))
		Expect(seen).To(Equal([]string{"1699999999999-0", "1700000000000-0", "1700000000000-0"}))

		body := w.Body.String()
		Expect(body).To(HavePrefix("event: ping\ndata: ready\n\n"))
		Expect(body).To(ContainSubstring("id: 1700000000000-0\nevent: board\n"))
		Expect(body).To(ContainSubstring(`"type":"upvote.toggled"`))
		Expect(body).To(ContainSubstring(`"feedbackId":"21"`))
	})

	It("falls back to Last-Event-ID and then to new entries only", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var first string
		sub.readFn = func(ctx context.Context, _ int64, lastID string, _ time.Duration) ([]events.Message, error) {
			if first == "" {
				first = lastID
			}
			cancel()
			return nil, ctx.Err()
		}
		h := handler.NewBoardStreamHandler(sub, sprints)
		router.GET("/stream/:sprintId", h.Stream)

		serve(ctx, "/stream/11", map[string]string{"Last-Event-ID": "5-0"})
		Expect(first).To(Equal("5-0"))

		first = ""
		ctx2, cancel2 := context.WithCancel(context.Background())
		defer cancel2()
		sub.readFn = func(ctx context.Context, _ int64, lastID string, _ time.Duration) ([]events.Message, error) {
			first = lastID
			cancel2()
			return nil, ctx.Err()
		}
		serve(ctx2, "/stream/11", nil)
		Expect(first).To(Equal("$"))
	})

	It("reports read failures to the client without closing the stream", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		calls := 0
		sub.readFn = func(ctx context.Context, _ int64, _ string, _ time.Duration) ([]events.Message, error) {
			calls++
			if calls == 1 {
				go func() {
					time.Sleep(50 * time.Millisecond)
					cancel()
				}()
				return nil, errors.New("redis: connection reset")
			}
			<-ctx.Done()
			return nil, ctx.Err()
		}
		h := handler.NewBoardStreamHandler(sub, sprints)
		router.GET("/stream/:sprintId", h.Stream)

		w := serve(ctx, "/stream/11", nil)

		Expect(w.Body.String()).To(ContainSubstring("event: error\n"))
		Expect(w.Body.String()).NotTo(ContainSubstring("connection reset"))
	})
})

var _ = Describe("HealthHandler", func() {
	It("reports ok when every check passes", func() {
		router := gin.New()
		h := handler.NewHealthHandler(handler.HealthCheck{
			Name: "postgres",
			Ping: func(context.Context) error { return nil },
		})
		router.GET("/health", h.Check)

		w := doJSON(router, http.MethodGet, "/health", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"status":"ok"}`))
	})

	It("returns 503 naming the failing dependency", func() {
		router := gin.New()
		h := handler.NewHealthHandler(
			handler.HealthCheck{Name: "postgres", Ping: func(context.Context) error { return nil }},
			handler.HealthCheck{Name: "redis", Ping: func(context.Context) error { return errors.New("dial tcp") }},
		)
		router.GET("/health", h.Check)

		w := doJSON(router, http.MethodGet, "/health", nil)

		Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
		Expect(w.Body.String()).To(MatchJSON(`{"status":"redis unavailable"}`))
	})
})
