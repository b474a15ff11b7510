// Package router provides registration module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shaundavidpr/hashitup-sub000/internal/middleware"
	"github.com/shaundavidpr/hashitup-sub000/internal/registration/handler"
	"github.com/shaundavidpr/hashitup-sub000/internal/registration/repository"
	"github.com/shaundavidpr/hashitup-sub000/internal/registration/service"
)

// RegisterRoutes registers registration gate routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, auth gin.HandlerFunc) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/registration", h.Get)
	r.PUT("/admin/registration", auth, middleware.RequireAdmin(), h.Update)
}
