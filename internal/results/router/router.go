// Package router provides results module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shaundavidpr/hashitup-sub000/internal/middleware"
	"github.com/shaundavidpr/hashitup-sub000/internal/results/handler"
	"github.com/shaundavidpr/hashitup-sub000/internal/results/service"
)

// RegisterRoutes registers results routes. The service is built by the
// caller because the submission module shares it as a publication gate.
func RegisterRoutes(r *gin.Engine, svc service.Service, logger *zap.SugaredLogger, auth gin.HandlerFunc) {
	h := handler.New(svc, logger)

	r.GET("/results", h.Status)
	r.POST("/admin/results/publish", auth, middleware.RequireSuperadmin(), h.Publish)
}
