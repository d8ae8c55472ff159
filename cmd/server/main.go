package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"vehicle_rental/internal/config"
	"vehicle_rental/internal/controllers"
	"vehicle_rental/internal/logger"
	"vehicle_rental/internal/middleware"
	"vehicle_rental/internal/routes"
	"vehicle_rental/internal/services"
)

func main() {
	cfg := config.Load()

	// Initialize structured logging to file
	logger.Setup(logger.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	stg, err := config.OpenStore(ctx, cfg)
	cancel()
	if err != nil {
		logrus.WithError(err).Fatal("failed to open store")
	}

	tokens := middleware.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	h := controllers.New(services.New(stg), tokens)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: routes.SetupRouter(h, tokens),
	}

	go func() {
		logrus.WithFields(logrus.Fields{
			"addr":  srv.Addr,
			"store": cfg.StoreDriver,
		}).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down")

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("server shutdown failed")
	}
	if err := stg.Close(shutdownCtx); err != nil {
		logrus.WithError(err).Error("failed to close store")
	}
}
