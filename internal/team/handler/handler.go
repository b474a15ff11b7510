// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shaundavidpr/hashitup-sub000/internal/middleware"
	"github.com/shaundavidpr/hashitup-sub000/internal/team/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /teams.
func (h *Handler) Create(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	var req model.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrRegistrationClosed):
			errorResponse(c, "REGISTRATION_CLOSED", "registration is closed", http.StatusLocked)
		case errors.Is(err, model.ErrAlreadyLeader):
			errorResponse(c, "ALREADY_LEADER", "you already lead a team", http.StatusConflict)
		case errors.Is(err, model.ErrAlreadyMember):
			errorResponse(c, "ALREADY_MEMBER", "you already belong to a team", http.StatusConflict)
		case errors.Is(err, model.ErrMemberTaken):
			errorResponse(c, "MEMBER_TAKEN", "a listed member already belongs to a team", http.StatusConflict)
		case errors.Is(err, model.ErrInvalidTeamSize):
			errorResponse(c, "VALIDATION_ERROR", "team size must be between 2 and 4", http.StatusBadRequest)
		default:
			h.logger.Errorw("error creating team", "error", err, "user_id", actor.ID)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetMine handles GET /teams/me.
func (h *Handler) GetMine(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	resp, err := h.service.GetMine(c.Request.Context(), actor)
	if err != nil {
		if errors.Is(err, model.ErrTeamNotFound) {
			errorResponse(c, "NOT_FOUND", "you are not part of any team", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error loading team", "error", err, "user_id", actor.ID)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
