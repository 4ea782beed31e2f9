package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitagpt/config"
	_ "gitagpt/docs" // Swagger docs
	"gitagpt/internal/httpserver"
	"gitagpt/pkg/huggingface"
	"gitagpt/pkg/llmprovider"
	"gitagpt/pkg/log"
	pkgQdrant "gitagpt/pkg/qdrant"
	pkgSupabase "gitagpt/pkg/supabase"
	"gitagpt/pkg/voyage"
)

// @title       GitaGPT API
// @description Spiritual-guidance chat backend: intent routing, emotion detection, semantic verse search, and LLM reflections with cascading fallback.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting GitaGPT...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Qdrant URL: %s (collection %s)", cfg.Qdrant.URL, cfg.Qdrant.CollectionName)

	// 3. Vector search stack
	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL)

	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Error(ctx, "Failed to create Voyage client: ", err)
		return
	}
	if cfg.Voyage.Model != "" {
		embedder = embedder.WithModel(cfg.Voyage.Model)
	}
	embedder = embedder.WithInputType("query")

	// 4. Hugging Face inference, optional. Without it the classifier
	// runs rule-based + heuristic tiers only and emotion detection is
	// absorbed by the router's fallback.
	var hfClient huggingface.IHuggingFace
	if cfg.HuggingFace.APIKey != "" {
		hfClient, err = huggingface.New(huggingface.Config{APIKey: cfg.HuggingFace.APIKey})
		if err != nil {
			logger.Warnf(ctx, "Hugging Face client not available: %v", err)
		}
	} else {
		logger.Warn(ctx, "HUGGINGFACE_API_KEY not set, model-based classification disabled")
	}

	// 5. Supabase persistence, optional
	var supabaseClient pkgSupabase.ISupabase
	if cfg.Supabase.URL != "" && cfg.Supabase.APIKey != "" {
		supabaseClient, err = pkgSupabase.New(pkgSupabase.Config{
			URL:    cfg.Supabase.URL,
			APIKey: cfg.Supabase.APIKey,
		})
		if err != nil {
			logger.Warnf(ctx, "Supabase client not available: %v", err)
		}
	} else {
		logger.Warn(ctx, "Supabase not configured, conversation persistence disabled")
	}

	// 6. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatConfig:  cfg.Chat,
		HFConfig:    cfg.HuggingFace,
		Qdrant:      qdrantClient,
		Collection:  cfg.Qdrant.CollectionName,
		Embedder:    embedder,
		HuggingFace: hfClient,
		Supabase:    supabaseClient,
		LLM:         llmManager,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
