// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shaundavidpr/hashitup-sub000/internal/notification"
	"github.com/shaundavidpr/hashitup-sub000/internal/team/handler"
	"github.com/shaundavidpr/hashitup-sub000/internal/team/repository"
	"github.com/shaundavidpr/hashitup-sub000/internal/team/service"
)

// RegisterRoutes registers team routes. The registration gate is injected
// so team creation respects the manual flag and cutoff.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, auth gin.HandlerFunc, gate service.Gate, notifier notification.Notifier) {
	repo := repository.New(db)
	svc := service.New(repo, db, gate, notifier, logger)
	h := handler.New(svc, logger)

	r.POST("/teams", auth, h.Create)
	r.GET("/teams/me", auth, h.GetMine)
}
