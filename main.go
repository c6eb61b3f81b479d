package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medvoice/medvoice/handlers"
	"github.com/medvoice/medvoice/internal/config"
	"github.com/medvoice/medvoice/internal/records/handler"
	"github.com/medvoice/medvoice/internal/records/repository"
	"github.com/medvoice/medvoice/internal/records/service"
	"github.com/medvoice/medvoice/internal/store"
	"github.com/medvoice/medvoice/pkg/logger"
	"github.com/medvoice/medvoice/pkg/metrics"
	"github.com/medvoice/medvoice/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// log level controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: store=%s rate_limit=%v redis=%v", cfg.Store.Backend, cfg.RateLimit.Enabled, cfg.Redis.Host != "")

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-API-Key")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate-limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional per-IP rate limiter, Redis-backed when configured
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Public health endpoints
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"uptime":    time.Since(startTime).Seconds(),
		})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":     true,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Snapshot store selection. Mongo when configured, single-file JSON
	// otherwise. A Mongo connection failure falls back to the file store so
	// the service still comes up.
	ctx := context.Background()
	var st store.Store
	if cfg.Store.Backend == "mongo" && cfg.Store.MongoURI != "" {
		var client *mongo.Client
		var errConn error
		backoff := time.Second
		const maxAttempts = 5
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn = store.ConnectMongo(ctx, cfg.Store.MongoURI, cfg.Store.MongoTimeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts, using JSON file store: %v", maxAttempts, errConn)
		} else {
			defer func() { _ = client.Disconnect(ctx) }()
			col := client.Database(cfg.Store.MongoDatabase).Collection("snapshots")
			st = store.NewMongoStore(col, cfg.Store.MongoTimeout)
			logger.Infof("using MongoDB snapshot store (db=%s)", cfg.Store.MongoDatabase)
		}
	}
	if st == nil {
		st = store.NewJSONStore(cfg.Store.Path)
		logger.Infof("using JSON file store at %s", cfg.Store.Path)
	}

	// Repositories and services share the one store instance.
	patientRepo := repository.NewPatientRepository(st)
	noteRepo := repository.NewNoteRepository(st)
	summaryRepo := repository.NewSummaryRepository(st)
	patientSvc := service.NewPatientService(patientRepo)
	noteSvc := service.NewNoteService(noteRepo, patientRepo)
	summarySvc := service.NewSummaryService(summaryRepo, noteRepo)

	// Protected API routes behind the shared API key
	api := r.Group("/api", middleware.APIKeyMiddleware(cfg.Auth.APIKey))
	handler.RegisterPatientRoutes(api, patientSvc)
	handler.RegisterNoteRoutes(api, noteSvc, summarySvc)

	handlers.RegisterSwagger(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("starting records service on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
