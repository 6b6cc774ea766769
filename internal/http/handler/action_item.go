package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sprintsync.app/retro/internal/http/dto"
	"sprintsync.app/retro/internal/service"
)

type ActionItemHandler struct {
	actionItems service.ActionItemService
}

func NewActionItemHandler(actionItems service.ActionItemService) *ActionItemHandler {
	return &ActionItemHandler{actionItems: actionItems}
}

func (h *ActionItemHandler) Toggle(c *gin.Context) {
	var req dto.ToggleActionItemRequest
	if !bindJSON(c, &req) {
		return
	}

	fb, err := h.actionItems.Toggle(c.Request.Context(), service.ToggleActionItemParams{
		SprintID:   req.SprintID,
		FeedbackID: req.FeedbackID,
		UserID:     req.UserID,
		UserName:   req.UserName,
	})
	if err != nil {
		respondError(c, err, "failed to toggle action item")
		return
	}

	message := "action item removed"
	if fb.ActionItem {
		message = "action item added"
	}
	respond(c, http.StatusOK, dto.ToFeedbackResponse(fb), message)
}

func (h *ActionItemHandler) ToggleUpvote(c *gin.Context) {
	var req dto.ToggleActionItemUpvoteRequest
	if !bindJSON(c, &req) {
		return
	}

	meta, err := h.actionItems.ToggleUpvote(c.Request.Context(), req.FeedbackID, req.UserID)
	if err != nil {
		respondError(c, err, "failed to toggle action item upvote")
		return
	}
	respond(c, http.StatusOK, meta, "action item upvote toggled")
}

func (h *ActionItemHandler) List(c *gin.Context) {
	var req dto.SprintScopedRequest
	if !bindJSON(c, &req) {
		return
	}

	items, err := h.actionItems.List(c.Request.Context(), req.SprintID)
	if err != nil {
		respondError(c, err, "failed to list action items")
		return
	}
	respond(c, http.StatusOK, dto.ToFeedbackResponses(items), "action items fetched")
}

func (h *ActionItemHandler) Count(c *gin.Context) {
	var req dto.SprintScopedRequest
	if !bindJSON(c, &req) {
		return
	}

	count, err := h.actionItems.Count(c.Request.Context(), req.SprintID)
	if err != nil {
		respondError(c, err, "failed to count action items")
		return
	}
	respond(c, http.StatusOK, dto.CountResponse{Count: count}, "action item count fetched")
}
