package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	OpenAI OpenAIConfig
	DND5E  DND5EConfig
	Social SocialConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string
}

// OpenAIConfig holds generative gateway configuration
type OpenAIConfig struct {
	APIKey     string
	BaseURL    string // Optional: for proxied or compatible endpoints
	TextModel  string
	ImageModel string
	TTSModel   string
}

// DND5EConfig holds D&D 5e API configuration
type DND5EConfig struct {
	BaseURL string
}

// SocialConfig holds friend simulation configuration
type SocialConfig struct {
	AcceptDelay time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Addr:            getEnvOrDefault("SERVER_ADDR", ":8080"),
			AllowedOrigins:  []string{getEnvOrDefault("CORS_ALLOWED_ORIGIN", "*")},
			ShutdownTimeout: time.Duration(getEnvAsIntOrDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Redis: RedisConfig{
			URL: getEnvOrDefault("REDIS_URL", "redis://localhost:6379"),
		},
		OpenAI: OpenAIConfig{
			APIKey:     os.Getenv("OPENAI_API_KEY"),
			BaseURL:    os.Getenv("OPENAI_BASE_URL"),
			TextModel:  getEnvOrDefault("OPENAI_TEXT_MODEL", "gpt-4o-mini"),
			ImageModel: getEnvOrDefault("OPENAI_IMAGE_MODEL", "dall-e-3"),
			TTSModel:   getEnvOrDefault("OPENAI_TTS_MODEL", "tts-1"),
		},
		DND5E: DND5EConfig{
			BaseURL: getEnvOrDefault("DND5E_API_URL", "https://www.dnd5eapi.co/api"),
		},
		Social: SocialConfig{
			AcceptDelay: time.Duration(getEnvAsIntOrDefault("FRIEND_ACCEPT_DELAY_SECONDS", 3)) * time.Second,
		},
	}

	// Validate required fields
	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
