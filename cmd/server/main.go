package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/finsight-ai/finsight/internal/advisor"
	"github.com/finsight-ai/finsight/internal/cache"
	"github.com/finsight-ai/finsight/internal/classifier"
	"github.com/finsight-ai/finsight/internal/server"
	"github.com/finsight-ai/finsight/internal/storage"
	"github.com/finsight-ai/finsight/pkg/config"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	// Initialize storage
	var store storage.Storage
	if cfg.Database.UseInMemory {
		logger.Info("Using in-memory storage")
		store = storage.NewMemoryStorage()
	} else {
		logger.Info("Using PostgreSQL storage")
		store, err = storage.NewPostgresStorage(storage.DatabaseConfig{
			Host:        cfg.Database.Host,
			Port:        cfg.Database.Port,
			User:        cfg.Database.User,
			Password:    cfg.Database.Password,
			DBName:      cfg.Database.DBName,
			SSLMode:     cfg.Database.SSLMode,
			UseInMemory: cfg.Database.UseInMemory,
		})
		if err != nil {
			logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
	}
	defer store.Close()

	// Initialize response cache
	var responseCache cache.Cache
	if cfg.Cache.Enabled {
		logger.Info("Using Redis response cache", zap.String("addr", cfg.Cache.Addr))
		responseCache = cache.NewRedisCache(
			cfg.Cache.Addr,
			cfg.Cache.Password,
			cfg.Cache.DB,
			time.Duration(cfg.Cache.TTLMinutes)*time.Minute,
		)
	} else {
		logger.Info("Using in-memory response cache")
		responseCache = cache.NewMemoryCache()
	}

	// Build the advisory pipeline: deterministic engine, optionally
	// fronted by the GPT delegation advisor.
	engine := advisor.NewEngine(classifier.NewKeywordClassifier(), logger)
	var adv advisor.Advisor = engine
	if cfg.OpenAI.APIKey != "" {
		logger.Info("GPT delegation enabled", zap.String("model", cfg.OpenAI.Model))
		adv = advisor.NewGPTAdvisor(
			cfg.OpenAI.APIKey,
			cfg.OpenAI.Model,
			cfg.OpenAI.MaxTokens,
			cfg.OpenAI.Temperature,
			engine,
			logger,
		)
	}

	srv := server.New(cfg.Server, adv, store, responseCache, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}

	logger.Info("Server exited")
}
