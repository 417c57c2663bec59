package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/tbranton/whisperwood/internal/config"
	"github.com/tbranton/whisperwood/internal/handlers"
	"github.com/tbranton/whisperwood/internal/logger"
	"github.com/tbranton/whisperwood/internal/middleware"
	"github.com/tbranton/whisperwood/internal/services"
	"github.com/tbranton/whisperwood/internal/storage"
	"github.com/tbranton/whisperwood/pkg/catalog"
	"github.com/tbranton/whisperwood/pkg/engine"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	log.Info("Starting Whisperwood API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"llm_provider", cfg.LLMProvider,
		"model_name", cfg.ModelName)

	var llmService services.LLMService
	switch strings.ToLower(cfg.LLMProvider) {
	case "ollama":
		llmService = services.NewOllamaService(cfg.OllamaURL, cfg.ModelName, log)
		log.Info("Using Ollama LLM provider")
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			log.Error("OpenAI API key is required when using openai provider")
			os.Exit(1)
		}
		llmService = services.NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIURL, cfg.ModelName, log)
		log.Info("Using OpenAI LLM provider")
	case "mock":
		llmService = services.NewMockLLMAPI()
		log.Warn("Using mock LLM provider; commands will not translate")
	default:
		log.Error("Invalid LLM provider specified", "provider", cfg.LLMProvider, "supported", []string{"ollama", "openai", "mock"})
		os.Exit(1)
	}

	store := storage.NewRedisStorage(cfg.RedisURL, log)
	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()

	if err := store.WaitForConnection(storageCtx); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}

	// Initialize the model on startup
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()
	if err := llmService.InitModel(ctx, cfg.ModelName); err != nil {
		log.Error("Failed to initialize LLM model", "error", err, "model", cfg.ModelName)
		os.Exit(1)
	}

	world := catalog.Default()
	if err := world.Validate(); err != nil {
		log.Error("World catalog failed validation", "error", err)
		os.Exit(1)
	}
	eng := engine.New(world,
		engine.WithLogger(log),
		engine.WithDice(engine.NewDice(cfg.RNGSeed)))
	if cfg.RNGSeed != 0 {
		log.Warn("Running with a pinned RNG seed", "seed", cfg.RNGSeed)
	}

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(store, log)
	mux.Handle("/health", healthHandler)

	translator := services.NewTranslator(llmService, log)
	sessionHandler := handlers.NewSessionHandler(eng, translator, store, log)
	mux.Handle("/v1/session", sessionHandler)
	mux.Handle("/v1/session/", sessionHandler)

	handler := middleware.Logger(mux)
	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := store.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
