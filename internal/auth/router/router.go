// Package router provides auth module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shaundavidpr/hashitup-sub000/internal/auth/handler"
	"github.com/shaundavidpr/hashitup-sub000/internal/auth/service"
)

// RegisterRoutes registers auth routes. The service is built by the caller
// because the auth middleware shares it as a token resolver.
func RegisterRoutes(r *gin.Engine, svc service.Service, logger *zap.SugaredLogger, auth gin.HandlerFunc) {
	h := handler.New(svc, logger)

	r.POST("/auth/signin", h.SignIn)
	r.GET("/auth/me", auth, h.Me)
}
