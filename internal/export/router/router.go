// Package router provides export module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shaundavidpr/hashitup-sub000/internal/export/handler"
	"github.com/shaundavidpr/hashitup-sub000/internal/export/repository"
	"github.com/shaundavidpr/hashitup-sub000/internal/middleware"
)

// RegisterRoutes registers admin export routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, auth gin.HandlerFunc) {
	h := handler.New(repository.New(db), logger)

	r.GET("/admin/export/teams.csv", auth, middleware.RequireAdmin(), h.TeamsCSV)
}
