// Package router provides review module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shaundavidpr/hashitup-sub000/internal/middleware"
	"github.com/shaundavidpr/hashitup-sub000/internal/notification"
	"github.com/shaundavidpr/hashitup-sub000/internal/review/handler"
	"github.com/shaundavidpr/hashitup-sub000/internal/review/repository"
	"github.com/shaundavidpr/hashitup-sub000/internal/review/service"
	submissionRepository "github.com/shaundavidpr/hashitup-sub000/internal/submission/repository"
	teamRepository "github.com/shaundavidpr/hashitup-sub000/internal/team/repository"
)

// RegisterRoutes registers admin review routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, auth gin.HandlerFunc, notifier notification.Notifier) {
	repo := repository.New(db)
	svc := service.New(repo, submissionRepository.New(db), teamRepository.New(db), notifier, logger)
	h := handler.New(svc, logger)

	admin := r.Group("/admin", auth, middleware.RequireAdmin())
	admin.GET("/submissions", h.List)
	admin.PATCH("/submissions/:ideaID/status", h.SetStatus)
	admin.POST("/submissions/bulk-status", h.BulkSetStatus)
}
