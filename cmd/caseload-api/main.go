package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rosterkit/caseload-api/api/swagger"
	"github.com/rosterkit/caseload-api/internal/handler"
	"github.com/rosterkit/caseload-api/internal/repository"
	"github.com/rosterkit/caseload-api/internal/service"
	"github.com/rosterkit/caseload-api/pkg/cache"
	"github.com/rosterkit/caseload-api/pkg/config"
	"github.com/rosterkit/caseload-api/pkg/logger"
	corsmiddleware "github.com/rosterkit/caseload-api/pkg/middleware/cors"
	reqidmiddleware "github.com/rosterkit/caseload-api/pkg/middleware/requestid"
)

// @title Caseload Timetable API
// @version 0.1.0
// @description Constraint-based session timetable generation
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, result cache disabled", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(client, logr)
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, cfg.Cache.Enabled && cacheRepo != nil)

	timetableSvc := service.NewTimetableService(cacheSvc, metrics, validator.New(), logr, service.TimetableConfig{
		SlotMinutes: cfg.Scheduler.SlotMinutes,
		PaletteSize: cfg.Scheduler.PaletteSize,
	})

	timetableHandler := handler.NewTimetableHandler(timetableSvc)
	metricsHandler := handler.NewMetricsHandler(metrics)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(metrics.GinMiddleware())

	r.GET("/health", metricsHandler.Health)

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/timetable/generate", timetableHandler.Generate)
		if cfg.Export.Enabled {
			api.POST("/timetable/export", timetableHandler.Export)
		}
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
