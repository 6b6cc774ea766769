package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sprintsync.app/retro/internal/http/dto"
	"sprintsync.app/retro/internal/model"
	"sprintsync.app/retro/internal/service"
)

type FeedbackHandler struct {
	feedback service.FeedbackService
}

func NewFeedbackHandler(feedback service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

func (h *FeedbackHandler) Add(c *gin.Context) {
	var req dto.AddFeedbackRequest
	if !bindJSON(c, &req) {
		return
	}

	fb, err := h.feedback.Add(c.Request.Context(), service.AddFeedbackParams{
		SprintID: req.SprintID,
		Author:   req.Author,
		Category: model.Category(req.Category),
		Message:  req.Message,
		Avatar:   req.Avatar,
	})
	if err != nil {
		respondError(c, err, "failed to add feedback")
		return
	}
	respond(c, http.StatusCreated, dto.ToFeedbackResponse(fb), "feedback added")
}

func (h *FeedbackHandler) List(c *gin.Context) {
	var req dto.ListFeedbackRequest
	if !bindJSON(c, &req) {
		return
	}

	var category *model.Category
	if req.Category != nil {
		cat := model.Category(*req.Category)
		category = &cat
	}

	feedbacks, err := h.feedback.List(c.Request.Context(), req.SprintID, category)
	if err != nil {
		respondError(c, err, "failed to list feedback")
		return
	}
	respond(c, http.StatusOK, dto.ToFeedbackResponses(feedbacks), "feedback fetched")
}

func (h *FeedbackHandler) UpdateCategory(c *gin.Context) {
	feedbackID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	fb, err := h.feedback.UpdateCategory(c.Request.Context(), feedbackID, model.Category(req.Category))
	if err != nil {
		respondError(c, err, "failed to update feedback")
		return
	}
	respond(c, http.StatusOK, dto.ToFeedbackResponse(fb), "feedback updated")
}
