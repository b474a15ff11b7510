// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authRepository "github.com/shaundavidpr/hashitup-sub000/internal/auth/repository"
	authRouter "github.com/shaundavidpr/hashitup-sub000/internal/auth/router"
	authService "github.com/shaundavidpr/hashitup-sub000/internal/auth/service"
	appConfig "github.com/shaundavidpr/hashitup-sub000/internal/config"
	"github.com/shaundavidpr/hashitup-sub000/internal/database"
	exportRouter "github.com/shaundavidpr/hashitup-sub000/internal/export/router"
	"github.com/shaundavidpr/hashitup-sub000/internal/health"
	"github.com/shaundavidpr/hashitup-sub000/internal/middleware"
	"github.com/shaundavidpr/hashitup-sub000/internal/notification"
	registrationRepository "github.com/shaundavidpr/hashitup-sub000/internal/registration/repository"
	registrationRouter "github.com/shaundavidpr/hashitup-sub000/internal/registration/router"
	registrationService "github.com/shaundavidpr/hashitup-sub000/internal/registration/service"
	resultsRepository "github.com/shaundavidpr/hashitup-sub000/internal/results/repository"
	resultsRouter "github.com/shaundavidpr/hashitup-sub000/internal/results/router"
	resultsService "github.com/shaundavidpr/hashitup-sub000/internal/results/service"
	reviewRouter "github.com/shaundavidpr/hashitup-sub000/internal/review/router"
	rosterRouter "github.com/shaundavidpr/hashitup-sub000/internal/roster/router"
	submissionRouter "github.com/shaundavidpr/hashitup-sub000/internal/submission/router"
	teamRouter "github.com/shaundavidpr/hashitup-sub000/internal/team/router"
	"github.com/shaundavidpr/hashitup-sub000/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := database.New()
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(db); err != nil {
		zlog.Fatalw("failed to run migrations", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := buildRouter(cfg, db, zlog)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zlog.Infow("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Errorw("forced shutdown", "error", err)
	}
}

// buildRouter wires repositories, services and routes onto a gin engine.
func buildRouter(cfg appConfig.Config, db *gorm.DB, zlog *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(zlog))
	r.Use(middleware.Recovery(zlog))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	var notifier notification.Notifier
	if cfg.SMTP.Enabled {
		notifier = notification.NewSMTP(cfg.SMTP, zlog)
	} else {
		notifier = notification.NewNop(zlog)
	}

	auth := authService.New(authRepository.New(db), db, cfg.Auth, zlog)
	authMW := middleware.Auth(auth, zlog)

	gate := registrationService.New(registrationRepository.New(db), zlog)
	results := resultsService.New(resultsRepository.New(db), notifier, zlog)

	health.RegisterRoutes(r, db, zlog)
	authRouter.RegisterRoutes(r, auth, zlog, authMW)
	registrationRouter.RegisterRoutes(r, db, zlog, authMW)
	teamRouter.RegisterRoutes(r, db, zlog, authMW, gate, notifier)
	submissionRouter.RegisterRoutes(r, db, zlog, authMW, results, notifier)
	reviewRouter.RegisterRoutes(r, db, zlog, authMW, notifier)
	rosterRouter.RegisterRoutes(r, db, zlog, authMW)
	resultsRouter.RegisterRoutes(r, results, zlog, authMW)
	exportRouter.RegisterRoutes(r, db, zlog, authMW)

	return r
}
