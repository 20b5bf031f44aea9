package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/phf-auction/player-stats-service/internal/api/handlers"
	"github.com/phf-auction/player-stats-service/internal/config"
	"github.com/phf-auction/player-stats-service/internal/dataset"
	"github.com/phf-auction/player-stats-service/internal/providers"
	"github.com/phf-auction/player-stats-service/internal/services"
	"github.com/phf-auction/player-stats-service/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	structuredLogger := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	logger.WithService("player-stats-service").WithFields(logrus.Fields{
		"environment": cfg.Env,
		"port":        cfg.Port,
	}).Info("Starting Player Stats Service")

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Optional Redis cache for the raw season export
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.WithService("player-stats-service").Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient = redis.NewClient(opt)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.WithService("player-stats-service").Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
	}

	// Pick the table source: upstream HTTP export when configured, local
	// file otherwise.
	var source services.TableSource
	if cfg.DataURL != "" {
		source = providers.NewSourceClient(
			cfg.DataURL,
			cfg.ExternalAPITimeout,
			cfg.CircuitBreakerThreshold,
			redisClient,
			structuredLogger,
		)
		logger.WithService("player-stats-service").WithField("url", cfg.DataURL).Info("Using HTTP season export source")
	} else {
		source = dataset.FileSource{Path: cfg.DataFile}
		logger.WithService("player-stats-service").WithField("file", cfg.DataFile).Info("Using local season export file")
	}

	enrichmentService := services.NewEnrichmentService(source, structuredLogger)

	// Initial load. The process starts anyway if it fails; /ready stays 503
	// and a scheduled or manual reload can recover.
	if _, err := enrichmentService.Reload(context.Background()); err != nil {
		logger.WithService("player-stats-service").WithError(err).Error("Initial dataset load failed")
	}

	// Scheduled refresh, each run a full fresh load cycle
	var scheduler *cron.Cron
	if cfg.RefreshInterval != "" {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.RefreshInterval, func() {
			if _, err := enrichmentService.Reload(context.Background()); err != nil {
				logger.WithService("player-stats-service").WithError(err).Error("Scheduled dataset reload failed")
			}
		})
		if err != nil {
			logger.WithService("player-stats-service").Fatalf("Invalid REFRESH_INTERVAL: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	playerHandler := handlers.NewPlayerHandler(enrichmentService, structuredLogger)
	healthHandler := handlers.NewHealthHandler(enrichmentService, structuredLogger)

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/players", playerHandler.ListPlayers)
		apiV1.GET("/players/:name", playerHandler.GetPlayer)
		apiV1.POST("/players/reload", playerHandler.ReloadDataset)
		apiV1.GET("/compare", playerHandler.ComparePlayers)
		apiV1.GET("/metrics/percentiles", playerHandler.GetPercentiles)
	}

	router.GET("/health", healthHandler.GetHealth)
	router.HEAD("/health", healthHandler.GetHealth)
	router.GET("/ready", healthHandler.GetReady)
	router.HEAD("/ready", healthHandler.GetReady)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		logger.WithService("player-stats-service").WithField("port", cfg.Port).Info("Player stats service started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithService("player-stats-service").Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.WithService("player-stats-service").Info("Shutting down player stats service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithService("player-stats-service").Fatalf("Player stats service forced to shutdown: %v", err)
	}

	logger.WithService("player-stats-service").Info("Player stats service exited")
}
