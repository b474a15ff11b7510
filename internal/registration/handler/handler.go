// Package handler provides HTTP handlers for registration gate endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shaundavidpr/hashitup-sub000/internal/registration/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/registration/service"
)

// Handler handles HTTP requests for registration gate endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new registration handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Get handles GET /registration.
func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error reading registration settings", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Update handles PUT /admin/registration.
func (h *Handler) Update(c *gin.Context) {
	var req model.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrPastCutoff) {
			errorResponse(c, "VALIDATION_ERROR", "registration end date must be in the future", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error updating registration settings", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
