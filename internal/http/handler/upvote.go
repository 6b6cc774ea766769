package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sprintsync.app/retro/internal/http/dto"
	"sprintsync.app/retro/internal/service"
)

type UpvoteHandler struct {
	upvotes service.UpvoteService
}

func NewUpvoteHandler(upvotes service.UpvoteService) *UpvoteHandler {
	return &UpvoteHandler{upvotes: upvotes}
}

func (h *UpvoteHandler) Toggle(c *gin.Context) {
	var req dto.ToggleUpvoteRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.upvotes.Toggle(c.Request.Context(), service.ToggleUpvoteParams{
		SprintID:   req.SprintID,
		UserID:     req.UserID,
		FeedbackID: req.FeedbackID,
	})
	if err != nil {
		respondError(c, err, "failed to toggle upvote")
		return
	}

	message := "upvote removed"
	if result.Voted {
		message = "upvote added"
	}
	respond(c, http.StatusOK, dto.ToUpvoteToggleResponse(result), message)
}

func (h *UpvoteHandler) List(c *gin.Context) {
	var req dto.SprintScopedRequest
	if !bindJSON(c, &req) {
		return
	}

	upvotes, err := h.upvotes.List(c.Request.Context(), req.SprintID)
	if err != nil {
		respondError(c, err, "failed to list upvotes")
		return
	}
	respond(c, http.StatusOK, dto.ToUpvoteResponses(upvotes), "upvotes fetched")
}

func (h *UpvoteHandler) Count(c *gin.Context) {
	var req dto.SprintScopedRequest
	if !bindJSON(c, &req) {
		return
	}

	count, err := h.upvotes.Count(c.Request.Context(), req.SprintID)
	if err != nil {
		respondError(c, err, "failed to count upvotes")
		return
	}
	respond(c, http.StatusOK, dto.CountResponse{Count: count}, "upvote count fetched")
}
