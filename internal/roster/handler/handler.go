// Package handler provides HTTP handlers for the admin roster endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authModel "github.com/shaundavidpr/hashitup-sub000/internal/auth/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/middleware"
	"github.com/shaundavidpr/hashitup-sub000/internal/roster/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/roster/service"
)

// Handler handles HTTP requests for roster endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new roster handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /admin/roster.
func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing roster", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Grant handles POST /admin/roster.
func (h *Handler) Grant(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	var req model.GrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Grant(c.Request.Context(), actor, req.Email)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Revoke handles DELETE /admin/roster/:email.
func (h *Handler) Revoke(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	if err := h.service.Revoke(c.Request.Context(), actor, c.Param("email")); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authModel.ErrUserNotFound):
		errorResponse(c, "NOT_FOUND", "user not found", http.StatusNotFound)
	case errors.Is(err, model.ErrForbiddenTarget):
		errorResponse(c, "FORBIDDEN", "insufficient authority over target user", http.StatusForbidden)
	case errors.Is(err, model.ErrAlreadyAdmin):
		errorResponse(c, "ALREADY_ADMIN", "user is already an admin", http.StatusConflict)
	case errors.Is(err, model.ErrNotAnAdmin):
		errorResponse(c, "NOT_AN_ADMIN", "user is not an admin", http.StatusConflict)
	case errors.Is(err, model.ErrSuperadminImmutable):
		errorResponse(c, "SUPERADMIN_IMMUTABLE", "superadmin role cannot be changed", http.StatusConflict)
	default:
		h.logger.Errorw("roster request failed", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
