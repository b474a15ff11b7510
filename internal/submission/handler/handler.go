// Package handler provides HTTP handlers for submission endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shaundavidpr/hashitup-sub000/internal/middleware"
	"github.com/shaundavidpr/hashitup-sub000/internal/submission/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/submission/service"
	teamModel "github.com/shaundavidpr/hashitup-sub000/internal/team/model"
)

// Handler handles HTTP requests for submission endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new submission handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /teams/:teamID/idea.
func (h *Handler) Create(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	var req model.SaveIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), actor, c.Param("teamID"), &req)
	if err != nil {
		h.writeError(c, err, actor.ID)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Update handles PUT /teams/:teamID/idea.
func (h *Handler) Update(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	var req model.SaveIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), actor, c.Param("teamID"), &req)
	if err != nil {
		h.writeError(c, err, actor.ID)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Get handles GET /teams/:teamID/idea.
func (h *Handler) Get(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	resp, err := h.service.Get(c.Request.Context(), actor, c.Param("teamID"))
	if err != nil {
		h.writeError(c, err, actor.ID)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) writeError(c *gin.Context, err error, actorID string) {
	switch {
	case errors.Is(err, teamModel.ErrTeamNotFound):
		errorResponse(c, "NOT_FOUND", "team not found", http.StatusNotFound)
	case errors.Is(err, model.ErrIdeaNotFound):
		errorResponse(c, "NOT_FOUND", "project idea not found", http.StatusNotFound)
	case errors.Is(err, model.ErrNotTeamParticipant):
		errorResponse(c, "FORBIDDEN", "you do not belong to this team", http.StatusForbidden)
	case errors.Is(err, model.ErrAlreadySubmitted):
		errorResponse(c, "ALREADY_SUBMITTED", "team already has a project idea", http.StatusConflict)
	case errors.Is(err, model.ErrIdeaLocked):
		errorResponse(c, "IDEA_LOCKED", "project idea is no longer editable", http.StatusConflict)
	default:
		h.logger.Errorw("submission request failed", "error", err, "user_id", actorID)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
