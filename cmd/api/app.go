package main

import (
	"context"
	"fmt"

	"MotivationGenerator/internal/config"
	"MotivationGenerator/internal/generation"
	"MotivationGenerator/internal/llm"
	"MotivationGenerator/internal/logging"
	"MotivationGenerator/internal/models"
	"MotivationGenerator/internal/storage"
	"MotivationGenerator/internal/validation"

	"go.uber.org/zap"
)

// app holds the components shared by serve and generate.
type app struct {
	cfg          *config.Config
	logger       *zap.Logger
	store        *storage.IndexedStore
	validator    *validation.Validator
	generator    llm.Generator
	orchestrator *generation.Orchestrator
	variants     map[string]models.Variant
}

func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	logger, logFile, err := logging.New(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("logger initialised", zap.String("file", logFile))
	return cfg, logger, nil
}

func newApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	variants := models.NewVariants(cfg.Storage.DataDir)
	store := storage.NewIndexedStore()
	if err := store.EnsureFolders(models.Folders(variants)...); err != nil {
		return nil, err
	}

	generator, err := newGenerator(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, err
	}
	if cfg.LLM.StartupCheck {
		if err := llm.CheckConnection(ctx, generator, logger); err != nil {
			return nil, fmt.Errorf("generation service check failed: %w", err)
		}
	}

	v := validation.New()
	return &app{
		cfg:          cfg,
		logger:       logger,
		store:        store,
		validator:    v,
		generator:    generator,
		orchestrator: generation.NewOrchestrator(store, v, generator, logger),
		variants:     variants,
	}, nil
}

func newGenerator(ctx context.Context, cfg config.LLMConfig, logger *zap.Logger) (llm.Generator, error) {
	switch cfg.Provider {
	case config.ProviderMock:
		logger.Info("[LLM] Using MOCK generation client")
		return llm.NewMockClient(), nil
	case config.ProviderGemini:
		logger.Info("[LLM] Using Gemini generation client", zap.String("model", cfg.Model))
		model := cfg.Model
		if model == llm.DefaultModel {
			model = llm.DefaultGeminiModel
		}
		return llm.NewGeminiClient(ctx, llm.GeminiConfig{
			APIKey:      cfg.GeminiAPIKey,
			Model:       model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			Timeout:     cfg.Timeout,
		}, logger)
	case config.ProviderOpenAI:
		logger.Info("[LLM] Using OpenAI-compatible generation client",
			zap.String("base_url", cfg.BaseURL), zap.String("model", cfg.Model))
		return llm.NewOpenAIClient(llm.OpenAIConfig{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			Timeout:     cfg.Timeout,
		}, logger), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
