// Package router provides roster module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shaundavidpr/hashitup-sub000/internal/middleware"
	"github.com/shaundavidpr/hashitup-sub000/internal/roster/handler"
	"github.com/shaundavidpr/hashitup-sub000/internal/roster/repository"
	"github.com/shaundavidpr/hashitup-sub000/internal/roster/service"
)

// RegisterRoutes registers admin roster routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, auth gin.HandlerFunc) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	admin := r.Group("/admin/roster", auth, middleware.RequireAdmin())
	admin.GET("", h.List)
	admin.POST("", h.Grant)
	admin.DELETE("/:email", h.Revoke)
}
