package router_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"sprintsync.app/retro/core/config"
	"sprintsync.app/retro/internal/http/handler"
	"sprintsync.app/retro/internal/http/router"
	"sprintsync.app/retro/internal/service"
	"sprintsync.app/retro/internal/store"
)

var _ = Describe("SetupRoutes", func() {
	var engine *gin.Engine

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		engine = gin.New()
		services := service.NewServices(store.NewStores(nil), nil, nil, config.BoardConfig{})
		router.SetupRoutes(engine, services, router.RouterConfig{
			HealthChecks: []handler.HealthCheck{{
				Name: "postgres",
				Ping: func(context.Context) error { return errors.New("down") },
			}},
		})
	})

	It("registers every retrospective route", func() {
		var routes []string
		for _, r := range engine.Routes() {
			routes = append(routes, r.Method+" "+r.Path)
		}

		Expect(routes).To(ContainElements(
			"POST /retrospectives/add-feedback",
			"POST /retrospectives/get-all-feedbacks",
			"PATCH /retrospectives/update-feedback/:id",
			"POST /retrospectives/add-feedback-comment",
			"POST /retrospectives/get-all-comments",
			"POST /retrospectives/get-total-comment-count",
			"POST /retrospectives/add-feedback-upvote",
			"POST /retrospectives/get-all-upvotes",
			"POST /retrospectives/get-total-upvote-count",
			"PATCH /retrospectives/add-action-item",
			"POST /retrospectives/add-action-items-upvote",
			"POST /retrospectives/get-all-action-items",
			"POST /retrospectives/get-total-action-item-count",
			"POST /retrospectives/add-sprint",
			"GET /retrospectives/get-all-sprint",
			"GET /retrospectives/get-all-sprint-count",
			"GET /retrospectives/get-sprint/:id",
			"POST /retrospectives/get-board-summary",
			"GET /retrospectives/stream/:sprintId",
			"GET /health",
			"GET /metrics",
		))
	})

	It("wires the health checks", func() {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
	})

	It("disables the board stream without a subscriber", func() {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/retrospectives/stream/11", nil))

		Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
	})
})

var _ = Describe("CORS", func() {
	var h http.Handler

	BeforeEach(func() {
		inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		h = router.CORS([]string{"https://board.example.com"})(inner)
	})

	It("answers preflight for an allowed origin", func() {
		req := httptest.NewRequest(http.MethodOptions, "/retrospectives/add-feedback", nil)
		req.Header.Set("Origin", "https://board.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("https://board.example.com"))
	})

	It("does not echo an unknown origin", func() {
		req := httptest.NewRequest(http.MethodGet, "/retrospectives/get-all-sprint", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		Expect(w.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
	})
})
