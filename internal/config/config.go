package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	RedisURL string

	// RNGSeed pins the engine's random source for reproducible runs.
	// Zero means seed from the clock.
	RNGSeed uint64

	// LLMProvider selects the command translator backend: "ollama",
	// "openai" or "mock".
	LLMProvider  string
	ModelName    string
	OllamaURL    string
	OpenAIAPIKey string
	OpenAIURL    string
}

func Load() *Config {
	// A .env file is a development convenience; the environment wins.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),

		RedisURL: getEnv("REDIS_URL", "localhost:6379"),

		RNGSeed: parseSeed(getEnv("RNG_SEED", "0")),

		LLMProvider:  getEnv("LLM_PROVIDER", "ollama"),
		ModelName:    getEnv("MODEL_NAME", "llama3.1:8b"),
		OllamaURL:    getEnv("OLLAMA_URL", "http://localhost:11434"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIURL:    getEnv("OPENAI_URL", "https://api.openai.com/v1"),
	}
}

func parseSeed(raw string) uint64 {
	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return seed
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
