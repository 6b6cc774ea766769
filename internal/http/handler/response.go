package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"sprintsync.app/retro/common/id"
	"sprintsync.app/retro/internal/http/dto"
	"sprintsync.app/retro/internal/service"
)

func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, dto.SuccessResponse{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

func fail(c *gin.Context, status int, message string, fieldErrs ...dto.FieldError) {
	if fieldErrs == nil {
		fieldErrs = []dto.FieldError{}
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		StatusCode: status,
		Success:    false,
		Message:    message,
		Errors:     fieldErrs,
	})
}

// bindJSON binds the body and answers 400 with field errors on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		slog.WarnContext(c.Request.Context(), "invalid request body", "error", err)
		fail(c, http.StatusBadRequest, "invalid request", dto.BindingErrors(err)...)
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	v, err := id.Parse(c.Param(name))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid request", dto.FieldError{Field: name, Message: "must be a positive id"})
		return 0, false
	}
	return v, true
}

// respondError maps service errors onto the failure envelope. Unexpected
// errors are logged and answered with action as a generic message.
func respondError(c *gin.Context, err error, action string) {
	ctx := c.Request.Context()

	if ve, ok := service.AsValidationError(err); ok {
		fail(c, http.StatusBadRequest, "invalid request", dto.FieldError{Field: ve.Field, Message: ve.Message})
		return
	}

	switch {
	case errors.Is(err, service.ErrSprintNotFound):
		fail(c, http.StatusNotFound, "sprint not found")
	case errors.Is(err, service.ErrFeedbackNotFound):
		fail(c, http.StatusNotFound, "feedback not found")
	case errors.Is(err, service.ErrNotFound):
		fail(c, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrConflict):
		fail(c, http.StatusConflict, service.ErrConflict.Error())
	case errors.Is(err, service.ErrNotActionItemOwner):
		fail(c, http.StatusForbidden, service.ErrNotActionItemOwner.Error())
	default:
		slog.ErrorContext(ctx, action, "error", err)
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, action)
	}
}
