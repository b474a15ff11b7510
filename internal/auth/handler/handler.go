// Package handler provides HTTP handlers for auth endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shaundavidpr/hashitup-sub000/internal/auth/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/auth/service"
	"github.com/shaundavidpr/hashitup-sub000/internal/middleware"
)

// Handler handles HTTP requests for auth endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new auth handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// SignIn handles POST /auth/signin.
func (h *Handler) SignIn(c *gin.Context) {
	var req model.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SignIn(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidEmail) {
			errorResponse(c, "VALIDATION_ERROR", "invalid email address", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("sign-in failed", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me handles GET /auth/me.
func (h *Handler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	c.JSON(http.StatusOK, model.NewUserResponse(user))
}
