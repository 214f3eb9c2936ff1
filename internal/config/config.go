// Package config loads process configuration from the environment. The
// loaded value is immutable for the process lifetime.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/voicebridge/server/domain/entities"
)

// Environment names the deployment environment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Config is the application configuration.
type Config struct {
	Env  Environment
	Port string

	CORSOrigins []string

	// AuthJWTSecret enables bearer auth on the API when non-empty.
	AuthJWTSecret string
	// MongoURI enables the outcome log when non-empty.
	MongoURI      string
	MongoDatabase string

	// Pipeline overrides; zero values keep the defaults.
	MaxFileSizeMB      int
	MinConfidenceScore float64
	MaxRetries         int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	env := Environment(getEnv("ENV", string(Development)))
	switch env {
	case Development, Staging, Production:
	default:
		return nil, fmt.Errorf("invalid ENV: %s (expected development, staging, or production)", env)
	}

	maxFileSizeMB, err := intEnv("MAX_FILE_SIZE_MB", 25)
	if err != nil {
		return nil, err
	}
	minConfidence, err := floatEnv("MIN_CONFIDENCE_SCORE", 0.7)
	if err != nil {
		return nil, err
	}
	maxRetries, err := intEnv("MAX_RETRIES", 3)
	if err != nil {
		return nil, err
	}

	origins := strings.Split(getEnv("CORS_ORIGINS", "*"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return &Config{
		Env:                env,
		Port:               getEnv("PORT", "8080"),
		CORSOrigins:        origins,
		AuthJWTSecret:      os.Getenv("AUTH_JWT_SECRET"),
		MongoURI:           os.Getenv("MONGODB_URI"),
		MongoDatabase:      getEnv("MONGODB_DATABASE", "voicebridge"),
		MaxFileSizeMB:      maxFileSizeMB,
		MinConfidenceScore: minConfidence,
		MaxRetries:         maxRetries,
	}, nil
}

// PipelineConfig builds the per-invocation pipeline tuning from the
// defaults plus any environment overrides.
func (c *Config) PipelineConfig() entities.PipelineConfig {
	cfg := entities.DefaultPipelineConfig()
	if c.MaxFileSizeMB > 0 {
		cfg.MaxFileSizeMB = c.MaxFileSizeMB
	}
	if c.MinConfidenceScore > 0 {
		cfg.MinConfidenceScore = c.MinConfidenceScore
	}
	if c.MaxRetries > 0 {
		cfg.MaxAttempts = c.MaxRetries
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return n, nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return f, nil
}
