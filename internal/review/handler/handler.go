// Package handler provides HTTP handlers for the admin review endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shaundavidpr/hashitup-sub000/internal/middleware"
	"github.com/shaundavidpr/hashitup-sub000/internal/review/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/review/service"
	submissionModel "github.com/shaundavidpr/hashitup-sub000/internal/submission/model"
)

// Handler handles HTTP requests for review endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new review handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /admin/submissions. The optional ?status= query filters
// by review state.
func (h *Handler) List(c *gin.Context) {
	var status *submissionModel.Status
	if raw, ok := c.GetQuery("status"); ok {
		s := submissionModel.Status(raw)
		if !s.Valid() {
			errorResponse(c, "VALIDATION_ERROR", "unknown status filter", http.StatusBadRequest)
			return
		}
		status = &s
	}

	resp, err := h.service.List(c.Request.Context(), status)
	if err != nil {
		h.logger.Errorw("error listing submissions", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SetStatus handles PATCH /admin/submissions/:ideaID/status.
func (h *Handler) SetStatus(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	var req model.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	idea, err := h.service.SetStatus(c.Request.Context(), actor.ID, c.Param("ideaID"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidStatus):
			errorResponse(c, "VALIDATION_ERROR", "invalid review status", http.StatusBadRequest)
		case errors.Is(err, submissionModel.ErrIdeaNotFound):
			errorResponse(c, "NOT_FOUND", "project idea not found", http.StatusNotFound)
		case errors.Is(err, model.ErrDraftNotEvaluable):
			errorResponse(c, "DRAFT_NOT_EVALUABLE", "draft submissions cannot be evaluated", http.StatusConflict)
		default:
			h.logger.Errorw("error setting submission status", "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, idea)
}

// BulkSetStatus handles POST /admin/submissions/bulk-status.
func (h *Handler) BulkSetStatus(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	var req model.BulkSetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.BulkSetStatus(c.Request.Context(), actor.ID, req.TeamIDs, req.Status)
	if err != nil {
		if errors.Is(err, model.ErrInvalidStatus) {
			errorResponse(c, "VALIDATION_ERROR", "invalid review status", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error applying bulk status update", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
