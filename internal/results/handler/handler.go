// Package handler provides HTTP handlers for results endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shaundavidpr/hashitup-sub000/internal/middleware"
	"github.com/shaundavidpr/hashitup-sub000/internal/results/service"
)

// Handler handles HTTP requests for results endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new results handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Status handles GET /results.
func (h *Handler) Status(c *gin.Context) {
	resp, err := h.service.Status(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error reading publication status", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Publish handles POST /admin/results/publish.
func (h *Handler) Publish(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	resp, err := h.service.Publish(c.Request.Context(), actor.ID)
	if err != nil {
		h.logger.Errorw("error publishing results", "error", err, "user_id", actor.ID)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
