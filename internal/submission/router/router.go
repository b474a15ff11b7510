// Package router provides submission module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shaundavidpr/hashitup-sub000/internal/notification"
	"github.com/shaundavidpr/hashitup-sub000/internal/submission/handler"
	"github.com/shaundavidpr/hashitup-sub000/internal/submission/repository"
	"github.com/shaundavidpr/hashitup-sub000/internal/submission/service"
	teamRepository "github.com/shaundavidpr/hashitup-sub000/internal/team/repository"
)

// RegisterRoutes registers submission routes. The results gate is injected
// so team readers only see the review status after publication.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, auth gin.HandlerFunc, results service.ResultsGate, notifier notification.Notifier) {
	repo := repository.New(db)
	svc := service.New(repo, teamRepository.New(db), results, notifier, logger)
	h := handler.New(svc, logger)

	r.POST("/teams/:teamID/idea", auth, h.Create)
	r.PUT("/teams/:teamID/idea", auth, h.Update)
	r.GET("/teams/:teamID/idea", auth, h.Get)
}
