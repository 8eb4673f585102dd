package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/andresuchdata/chainsight/internal/api/handlers"
	"github.com/andresuchdata/chainsight/internal/api/middleware"
	"github.com/andresuchdata/chainsight/internal/service"
)

type Services struct {
	DashboardService *service.DashboardService
	PipelineService  *service.PipelineService
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if services != nil {
		if services.DashboardService != nil {
			dashboardHandler := handlers.NewDashboardHandler(services.DashboardService)
			dashboardGroup := apiGroup.Group("/dashboards")
			{
				dashboardGroup.GET("", dashboardHandler.ListTables)
				dashboardGroup.GET("/:table", dashboardHandler.GetTable)
				dashboardGroup.POST("/cache/invalidate", dashboardHandler.InvalidateCache)
			}
		}

		if services.PipelineService != nil {
			pipelineHandler := handlers.NewPipelineHandler(services.PipelineService)
			pipelineGroup := apiGroup.Group("/pipeline")
			{
				pipelineGroup.POST("/run", pipelineHandler.TriggerRun)
				pipelineGroup.GET("/status", pipelineHandler.GetStatus)
			}
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
