package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sprintsync.app/retro/internal/http/dto"
	"sprintsync.app/retro/internal/service"
)

type SprintHandler struct {
	sprints service.SprintService
	summary service.SummaryService
}

func NewSprintHandler(sprints service.SprintService, summary service.SummaryService) *SprintHandler {
	return &SprintHandler{sprints: sprints, summary: summary}
}

func (h *SprintHandler) Create(c *gin.Context) {
	var req dto.AddSprintRequest
	if !bindJSON(c, &req) {
		return
	}

	sprint, err := h.sprints.Create(c.Request.Context(), service.CreateSprintParams{
		Name:        req.SprintName,
		ProjectName: req.ProjectName,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		respondError(c, err, "failed to create sprint")
		return
	}

	respond(c, http.StatusCreated, dto.ToSprintResponse(sprint), "sprint created")
}

func (h *SprintHandler) List(c *gin.Context) {
	sprints, err := h.sprints.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list sprints")
		return
	}
	respond(c, http.StatusOK, dto.ToSprintResponses(sprints), "sprints fetched")
}

func (h *SprintHandler) Count(c *gin.Context) {
	count, err := h.sprints.Count(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to count sprints")
		return
	}
	respond(c, http.StatusOK, dto.CountResponse{Count: count}, "sprint count fetched")
}

func (h *SprintHandler) Get(c *gin.Context) {
	sprintID, ok := pathID(c, "id")
	if !ok {
		return
	}

	sprint, err := h.sprints.Get(c.Request.Context(), sprintID)
	if err != nil {
		respondError(c, err, "failed to get sprint")
		return
	}
	respond(c, http.StatusOK, dto.ToSprintResponse(sprint), "sprint fetched")
}

func (h *SprintHandler) Summary(c *gin.Context) {
	var req dto.SprintScopedRequest
	if !bindJSON(c, &req) {
		return
	}

	summary, err := h.summary.BoardSummary(c.Request.Context(), req.SprintID)
	if err != nil {
		respondError(c, err, "failed to summarize board")
		return
	}
	respond(c, http.StatusOK, dto.ToBoardSummaryResponse(summary), "board summary fetched")
}
