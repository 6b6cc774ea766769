package router

import (
	"github.com/gin-gonic/gin"

	"sprintsync.app/retro/internal/http/handler"
)

type RetrospectiveHandlers struct {
	Sprints     *handler.SprintHandler
	Feedback    *handler.FeedbackHandler
	Comments    *handler.CommentHandler
	Upvotes     *handler.UpvoteHandler
	ActionItems *handler.ActionItemHandler
	Stream      *handler.BoardStreamHandler
}

// RetrospectiveRouter keeps the paths the board client already calls, so
// several reads are POSTs carrying sprintId in the body.
func RetrospectiveRouter(rg *gin.RouterGroup, h RetrospectiveHandlers) {
	rg.POST("/add-sprint", h.Sprints.Create)
	rg.GET("/get-all-sprint", h.Sprints.List)
	rg.GET("/get-all-sprint-count", h.Sprints.Count)
	rg.GET("/get-sprint/:id", h.Sprints.Get)
	rg.POST("/get-board-summary", h.Sprints.Summary)

	rg.POST("/add-feedback", h.Feedback.Add)
	rg.POST("/get-all-feedbacks", h.Feedback.List)
	rg.PATCH("/update-feedback/:id", h.Feedback.UpdateCategory)

	rg.POST("/add-feedback-comment", h.Comments.Add)
	rg.POST("/get-all-comments", h.Comments.List)
	rg.POST("/get-total-comment-count", h.Comments.Count)

	rg.POST("/add-feedback-upvote", h.Upvotes.Toggle)
	rg.POST("/get-all-upvotes", h.Upvotes.List)
	rg.POST("/get-total-upvote-count", h.Upvotes.Count)

	rg.PATCH("/add-action-item", h.ActionItems.Toggle)
	rg.POST("/add-action-items-upvote", h.ActionItems.ToggleUpvote)
	rg.POST("/get-all-action-items", h.ActionItems.List)
	rg.POST("/get-total-action-item-count", h.ActionItems.Count)

	rg.GET("/stream/:sprintId", h.Stream.Stream)
}
