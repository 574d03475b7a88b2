package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string
	FrontendURL string

	JWTSecret string

	LLMProvider     string
	GeminiAPIKey    string
	OpenAIAPIKey    string
	AnthropicAPIKey string

	DailyGenerationQuota     int
	MaxConcurrentGenerations int
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		FrontendURL: os.Getenv("FRONTEND_URL"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		LLMProvider:     getEnv("LLM_PROVIDER", "gemini"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),

		DailyGenerationQuota:     getEnvInt("DAILY_GENERATION_QUOTA", 100),
		MaxConcurrentGenerations: getEnvInt("MAX_CONCURRENT_GENERATIONS", 4),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return cfg, nil
}

func (c *Config) ProviderAPIKey() (string, error) {
	switch c.LLMProvider {
	case "gemini":
		if c.GeminiAPIKey == "" {
			return "", fmt.Errorf("GEMINI_API_KEY is not set")
		}
		return c.GeminiAPIKey, nil
	case "openai":
		if c.OpenAIAPIKey == "" {
			return "", fmt.Errorf("OPENAI_API_KEY is not set")
		}
		return c.OpenAIAPIKey, nil
	case "anthropic":
		if c.AnthropicAPIKey == "" {
			return "", fmt.Errorf("ANTHROPIC_API_KEY is not set")
		}
		return c.AnthropicAPIKey, nil
	}
	return "", fmt.Errorf("unknown LLM provider: %s", c.LLMProvider)
}

func getEnv(name, defaultValue string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(name string, defaultValue int) int {
	v := os.Getenv(name)
	if v == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return parsed
}
