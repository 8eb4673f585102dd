package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/andresuchdata/chainsight/internal/api"
	"github.com/andresuchdata/chainsight/internal/cache"
	"github.com/andresuchdata/chainsight/internal/config"
	"github.com/andresuchdata/chainsight/internal/dataset"
	"github.com/andresuchdata/chainsight/internal/pipeline"
	"github.com/andresuchdata/chainsight/internal/service"
	"github.com/andresuchdata/chainsight/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	dashboardCache, err := cache.NewDashboardCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("cache unavailable, serving without it")
		dashboardCache = cache.NewNoopDashboardCache()
	}

	store := dataset.NewStore(cfg.Data)
	services := &api.Services{
		DashboardService: service.NewDashboardService(store, dashboardCache),
		PipelineService:  service.NewPipelineService(pipeline.NewEnv(cfg), dashboardCache),
	}

	router := api.NewRouter(services, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
