// Package health provides the liveness endpoint.
package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shaundavidpr/hashitup-sub000/internal/database"
)

// Handler reports process and database health.
type Handler struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new health handler instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) *Handler {
	return &Handler{db: db, logger: logger}
}

// RegisterRoutes registers the health route.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	h := New(db, logger)
	r.GET("/health", h.Check)
}

// Check handles GET /health.
func (h *Handler) Check(c *gin.Context) {
	if err := database.HealthCheck(c.Request.Context(), h.db); err != nil {
		h.logger.Errorw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
