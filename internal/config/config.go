package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	SplunkURL   string
	SplunkToken string
	StaticDir   string
}

// Load reads configuration from the environment, with optional .env
// support. It runs once at startup; nothing else reads ambient env state.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        GetEnvAsString("PORT", "3000"),
		MongoURI:    os.Getenv("MONGO_URI"),
		MongoDB:     GetEnvAsString("MONGO_DB", "contactbook"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		SplunkURL:   os.Getenv("SPLUNK_URL"),
		SplunkToken: os.Getenv("SPLUNK_TOKEN"),
		StaticDir:   GetEnvAsString("STATIC_DIR", "public"),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
