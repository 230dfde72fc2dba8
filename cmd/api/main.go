package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"totem-fashion/internal/catalog"
	"totem-fashion/internal/config"
	"totem-fashion/internal/db"
	apihttp "totem-fashion/internal/http"
	"totem-fashion/internal/metrics"
	"totem-fashion/internal/repository"
	"totem-fashion/internal/service"
	"totem-fashion/internal/stylerules"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var source catalog.Source = catalog.FileSource{Path: cfg.CatalogFile}
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := db.Ping(ctxPing, pool); err != nil {
			logger.Fatal("db ping failed", zap.Error(err))
		}
		cancel()
		source = repository.NewPgItemRepository(pool)
	}
	idx, err := catalog.Load(ctx, source, logger)
	if err != nil {
		logger.Fatal("catalog load", zap.Error(err))
	}

	rules, err := stylerules.Load(cfg.StyleRulesFile)
	if err != nil {
		logger.Fatal("style rules", zap.Error(err))
	}

	var sessions repository.SessionRepository
	switch cfg.SessionBackend {
	case config.SessionBackendRedis:
		if cfg.RedisAddr == "" {
			logger.Fatal("redis session backend requires REDIS_ADDR")
		}
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Fatal("redis ping failed", zap.Error(err))
		}
		cancel()
		sessions = repository.NewRedisSessionRepository(redisClient, cfg.SessionTTL())
	default:
		sessions = repository.NewMemorySessionRepository(cfg.SessionMaxEntries, cfg.SessionTTL())
	}

	reg := prometheus.NewRegistry()
	m := metrics.MustNewMetrics(reg)
	m.SetCatalogSize(idx.Len())

	composer := service.NewOutfitComposer(idx, rules)
	stylistSvc := service.NewStylistService(logger, sessions, idx, composer, m, service.StylistOptions{
		DiscoverLimit:  cfg.DiscoverLimit,
		RecommendLimit: cfg.RecommendLimit,
	})

	stylistHandler := apihttp.NewStylistHandler(logger, stylistSvc)
	sessionHandler := apihttp.NewSessionHandler(logger, stylistSvc)
	catalogHandler := apihttp.NewCatalogHandler(logger, stylistSvc)
	router := apihttp.NewRouter(logger, stylistHandler, sessionHandler, catalogHandler,
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.String("session_backend", cfg.SessionBackend),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
