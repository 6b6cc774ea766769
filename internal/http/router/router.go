package router

import (
	"github.com/gin-gonic/gin"

	"sprintsync.app/retro/common/metrics"
	"sprintsync.app/retro/internal/events"
	"sprintsync.app/retro/internal/http/handler"
	"sprintsync.app/retro/internal/service"
)

type RouterConfig struct {
	// Subscriber backs /stream; nil disables it with 503.
	Subscriber   events.Subscriber
	HealthChecks []handler.HealthCheck
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", handler.NewHealthHandler(cfg.HealthChecks...).Check)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	RetrospectiveRouter(router.Group("/retrospectives"), RetrospectiveHandlers{
		Sprints:     handler.NewSprintHandler(services.Sprints(), services.Summary()),
		Feedback:    handler.NewFeedbackHandler(services.Feedback()),
		Comments:    handler.NewCommentHandler(services.Comments()),
		Upvotes:     handler.NewUpvoteHandler(services.Upvotes()),
		ActionItems: handler.NewActionItemHandler(services.ActionItems()),
		Stream:      handler.NewBoardStreamHandler(cfg.Subscriber, services.Sprints()),
	})
}
