package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sprintsync.app/retro/internal/http/dto"
	"sprintsync.app/retro/internal/service"
)

type CommentHandler struct {
	comments service.CommentService
}

func NewCommentHandler(comments service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

func (h *CommentHandler) Add(c *gin.Context) {
	var req dto.AddCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.comments.Add(c.Request.Context(), service.AddCommentParams{
		SprintID:   req.SprintID,
		FeedbackID: req.FeedbackID,
		Author:     req.Author,
		Message:    req.Message,
		Avatar:     req.Avatar,
	})
	if err != nil {
		respondError(c, err, "failed to add comment")
		return
	}
	respond(c, http.StatusCreated, dto.ToCommentResponse(comment), "comment added")
}

func (h *CommentHandler) List(c *gin.Context) {
	var req dto.SprintScopedRequest
	if !bindJSON(c, &req) {
		return
	}

	comments, err := h.comments.List(c.Request.Context(), req.SprintID)
	if err != nil {
		respondError(c, err, "failed to list comments")
		return
	}
	respond(c, http.StatusOK, dto.ToCommentResponses(comments), "comments fetched")
}

func (h *CommentHandler) Count(c *gin.Context) {
	var req dto.SprintScopedRequest
	if !bindJSON(c, &req) {
		return
	}

	count, err := h.comments.Count(c.Request.Context(), req.SprintID)
	if err != nil {
		respondError(c, err, "failed to count comments")
		return
	}
	respond(c, http.StatusOK, dto.CountResponse{Count: count}, "comment count fetched")
}
