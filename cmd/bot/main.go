package main

import (
	"go.uber.org/zap"

	"github.com/finsight-ai/finsight/internal/advisor"
	"github.com/finsight-ai/finsight/internal/bot"
	"github.com/finsight-ai/finsight/internal/classifier"
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

	// The bot drives the same advisory pipeline as the HTTP server.
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

	b, err := bot.New(cfg.Telegram.Token, adv, store, logger)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	if err := b.Start(); err != nil {
		logger.Fatal("Bot error", zap.Error(err))
	}
}
