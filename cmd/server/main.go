package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/vedanga/astro-engine-go/internal/api"
	"github.com/vedanga/astro-engine-go/internal/api/handlers"
	"github.com/vedanga/astro-engine-go/internal/cache"
	"github.com/vedanga/astro-engine-go/internal/config"
	"github.com/vedanga/astro-engine-go/internal/ephemeris"
	"github.com/vedanga/astro-engine-go/internal/logging"
	"github.com/vedanga/astro-engine-go/internal/services"
	"github.com/vedanga/astro-engine-go/internal/telemetry"
)

const version = "1.0.0"

func main() {
	// .env is optional; real deployments set environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.Environment)

	tele, err := telemetry.Init(cfg.Telemetry.ServiceName, cfg.Telemetry.Enabled)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize telemetry")
	}
	defer func() {
		if err := tele.Shutdown(context.Background()); err != nil {
			logger.WithError(err).Warn("Telemetry shutdown failed")
		}
	}()

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			logger.WithError(err).Warn("Redis unreachable, report caching disabled")
			redisClient = nil
		}
		cancel()
		if redisClient != nil {
			defer redisClient.Close()
		}
	}

	eph := ephemeris.NewCached(ephemeris.NewAnalytic(), cfg.Ephemeris.CacheSize)

	chartSvc := services.NewChartService(eph, logger)
	calcHandler := handlers.NewCalculationHandler(
		services.NewHoroscopeService(eph, logger),
		chartSvc,
		services.NewDivisionalService(logger),
		services.NewPanchangService(eph, logger),
		services.NewDashaService(logger),
		services.NewKPService(logger),
		services.NewAshtakavargaService(logger),
		services.NewYogaService(logger),
		services.NewMatchingService(logger),
		services.NewRemedyService(logger),
		cache.NewRedisReportCache(redisClient, time.Duration(cfg.Redis.ReportTTLHours)*time.Hour, logger),
		cfg.Calculation,
		logger,
	)
	healthHandler := handlers.NewHealthHandler(redisClient, version)

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, calcHandler, healthHandler, cfg.Telemetry.ServiceName)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.WithField("port", cfg.Server.Port).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Fatal("Server forced to shutdown")
	}
	logger.Info("Server exited")
}
