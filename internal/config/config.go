package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	// Application environment: "development" uses the mock payment
	// gateway, "production" talks to the real Paystack API.
	Env string

	// Web Server
	WebBind   string
	BaseURL   string
	StaticDir string

	// Paystack
	PaystackSecretKey string
}

func Load() (*Config, error) {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := &Config{
		Env:               getEnvDefault("APP_ENV", EnvDevelopment),
		WebBind:           getEnvDefault("WEB_BIND", "0.0.0.0:3001"),
		BaseURL:           getEnvDefault("BASE_URL", "http://localhost:3001"),
		StaticDir:         getEnvDefault("STATIC_DIR", "./frontend"),
		PaystackSecretKey: os.Getenv("PAYSTACK_SECRET_KEY"),
	}

	if cfg.Env != EnvDevelopment && cfg.Env != EnvProduction {
		return nil, fmt.Errorf("APP_ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, cfg.Env)
	}

	// The secret key is only needed when the real gateway is in use.
	if cfg.Env == EnvProduction && cfg.PaystackSecretKey == "" {
		return nil, fmt.Errorf("PAYSTACK_SECRET_KEY is required in production")
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func getEnvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
