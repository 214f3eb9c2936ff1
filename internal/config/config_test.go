package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"ENV", "PORT", "CORS_ORIGINS", "AUTH_JWT_SECRET", "MONGODB_URI",
		"MONGODB_DATABASE", "MAX_FILE_SIZE_MB", "MIN_CONFIDENCE_SCORE",
		"MAX_RETRIES",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Env != Development {
		t.Errorf("Expected development default, got %s", cfg.Env)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("Expected wildcard CORS default, got %v", cfg.CORSOrigins)
	}
	if cfg.MongoURI != "" || cfg.MongoDatabase != "voicebridge" {
		t.Errorf("Unexpected mongo defaults: uri=%q db=%q", cfg.MongoURI, cfg.MongoDatabase)
	}
	if cfg.MaxFileSizeMB != 25 || cfg.MinConfidenceScore != 0.7 || cfg.MaxRetries != 3 {
		t.Errorf("Unexpected pipeline defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("MONGODB_URI", "mongodb://db.internal:27017")
	t.Setenv("MONGODB_DATABASE", "voicebridge_prod")
	t.Setenv("MAX_FILE_SIZE_MB", "10")
	t.Setenv("MAX_RETRIES", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Env != Production || cfg.Port != "9000" {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example.com" {
		t.Errorf("Expected trimmed origin list, got %v", cfg.CORSOrigins)
	}
	if cfg.MongoURI != "mongodb://db.internal:27017" || cfg.MongoDatabase != "voicebridge_prod" {
		t.Errorf("Mongo overrides not applied: uri=%q db=%q", cfg.MongoURI, cfg.MongoDatabase)
	}

	pipeline := cfg.PipelineConfig()
	if pipeline.MaxFileSizeMB != 10 {
		t.Errorf("Expected file size override in pipeline config, got %d", pipeline.MaxFileSizeMB)
	}
	if pipeline.MaxAttempts != 5 {
		t.Errorf("Expected retry override in pipeline config, got %d", pipeline.MaxAttempts)
	}
	// Untouched tuning keeps its default.
	if pipeline.MinTextLength != 3 {
		t.Errorf("Expected default min text length, got %d", pipeline.MinTextLength)
	}
}

func TestLoadInvalidEnv(t *testing.T) {
	t.Setenv("ENV", "qa")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "invalid ENV") {
		t.Errorf("Expected invalid ENV error, got %v", err)
	}
}

func TestLoadMalformedNumbers(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("MAX_FILE_SIZE_MB", "lots")

	if _, err := Load(); err == nil {
		t.Error("Expected error for malformed MAX_FILE_SIZE_MB")
	}

	t.Setenv("MAX_FILE_SIZE_MB", "25")
	t.Setenv("MIN_CONFIDENCE_SCORE", "high")
	if _, err := Load(); err == nil {
		t.Error("Expected error for malformed MIN_CONFIDENCE_SCORE")
	}
}
