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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tweetsense/sentiment-api/internal/adapter/client"
	"github.com/tweetsense/sentiment-api/internal/adapter/http/router"
	"github.com/tweetsense/sentiment-api/internal/adapter/publisher"
	"github.com/tweetsense/sentiment-api/internal/domain/service"
	"github.com/tweetsense/sentiment-api/internal/infrastructure/cache"
	"github.com/tweetsense/sentiment-api/internal/infrastructure/config"
	"github.com/tweetsense/sentiment-api/internal/infrastructure/logger"
	"github.com/tweetsense/sentiment-api/internal/infrastructure/metrics"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Metrics registry
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Load the model once, before accepting requests
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.Model.Timeout)
	classifier, err := client.LoadClassifier(loadCtx, &cfg.Model)
	cancelLoad()
	if err != nil {
		log.Error("Failed to load model", zap.String("model", cfg.Model.ID), zap.Error(err))
		return err
	}
	log.Info("Model loaded",
		zap.String("model", cfg.Model.ID),
		zap.String("base_url", cfg.Model.BaseURL),
		zap.Bool("warmup", cfg.Model.Warmup),
	)

	// Initialize Redis publisher when tweet publishing is enabled
	var (
		redisClient *redis.Client
		pub         service.Publisher
	)
	if cfg.Queue.Enabled {
		redisClient, err = cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Error("Failed to connect to Redis", zap.Error(err))
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		pub = publisher.NewRedisPublisher(redisClient)
		log.Info("Publishing tweets", zap.String("redis", cfg.Redis.Addr()), zap.String("topic", cfg.Queue.Topic))
	} else {
		log.Info("Tweet publishing disabled")
	}

	// Setup router
	r := router.Setup(&router.Dependencies{
		Config:      cfg,
		Classifier:  classifier,
		ModelHealth: classifier,
		Publisher:   pub,
		Redis:       redisClient,
		Metrics:     m,
		Gatherer:    reg,
		Logger:      log,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Model.Timeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Starting server",
			zap.String("address", addr),
			zap.Bool("cors", cfg.Server.CORS.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close Redis connection
	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info("Server exited")
	return nil
}
