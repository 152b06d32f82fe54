package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MENTOR_API_KEY", "test-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LLM.Provider != ProviderOpenAI {
		t.Errorf("Provider = %q, want %q", cfg.LLM.Provider, ProviderOpenAI)
	}
	if cfg.Ingest.ChunkSize != 1000 || cfg.Ingest.ChunkOverlap != 200 {
		t.Errorf("chunking defaults = %d/%d, want 1000/200", cfg.Ingest.ChunkSize, cfg.Ingest.ChunkOverlap)
	}
	if cfg.Ingest.BatchSize != 10 {
		t.Errorf("BatchSize = %d, want 10", cfg.Ingest.BatchSize)
	}
	if cfg.Ingest.TaskTTL != 24*time.Hour {
		t.Errorf("TaskTTL = %v, want 24h", cfg.Ingest.TaskTTL)
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `llm:
  provider: ollama
  model: llama3
  embedding_model: nomic-embed-text
database:
  url: postgres://app@db:5432/mentor
ingest:
  chunk_size: 800
  chunk_overlap: 100
log:
  level: debug
`
	path := filepath.Join(t.TempDir(), "mentor.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LLM.Provider != ProviderOllama {
		t.Errorf("Provider = %q, want %q", cfg.LLM.Provider, ProviderOllama)
	}
	if cfg.LLM.Model != "llama3" {
		t.Errorf("Model = %q, want %q", cfg.LLM.Model, "llama3")
	}
	if cfg.Database.URL != "postgres://app@db:5432/mentor" {
		t.Errorf("Database.URL = %q", cfg.Database.URL)
	}
	if cfg.Ingest.ChunkSize != 800 || cfg.Ingest.ChunkOverlap != 100 {
		t.Errorf("chunking = %d/%d, want 800/100", cfg.Ingest.ChunkSize, cfg.Ingest.ChunkOverlap)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	// Unset file fields keep defaults
	if cfg.Ingest.BatchSize != 10 {
		t.Errorf("BatchSize = %d, want default 10", cfg.Ingest.BatchSize)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	content := `llm:
  provider: ollama
  model: llama3
`
	path := filepath.Join(t.TempDir(), "mentor.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MENTOR_MODEL", "llama3.1")
	t.Setenv("MENTOR_CHUNK_SIZE", "500")
	t.Setenv("MENTOR_DATABASE_URL", "postgres://env@db:5432/mentor")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LLM.Model != "llama3.1" {
		t.Errorf("Model = %q, want env override llama3.1", cfg.LLM.Model)
	}
	if cfg.Ingest.ChunkSize != 500 {
		t.Errorf("ChunkSize = %d, want env override 500", cfg.Ingest.ChunkSize)
	}
	if cfg.Database.URL != "postgres://env@db:5432/mentor" {
		t.Errorf("Database.URL = %q, want env override", cfg.Database.URL)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	t.Setenv("MENTOR_PROVIDER", "ollama")

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
		t.Fatalf("Load() with missing file error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid openai", func(c *Config) { c.LLM.APIKey = "sk-test" }, false},
		{"openai without key", func(c *Config) {}, true},
		{"valid ollama", func(c *Config) { c.LLM.Provider = ProviderOllama }, false},
		{"unknown provider", func(c *Config) { c.LLM.Provider = "gemini" }, true},
		{"missing database url", func(c *Config) {
			c.LLM.Provider = ProviderOllama
			c.Database.URL = " "
		}, true},
		{"overlap too large", func(c *Config) {
			c.LLM.Provider = ProviderOllama
			c.Ingest.ChunkOverlap = c.Ingest.ChunkSize
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}

func TestLoggerUnknownLevelFallsBack(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "chatty"

	logger := cfg.Logger()
	if logger.GetLevel().String() != "info" {
		t.Errorf("GetLevel() = %q, want info", logger.GetLevel())
	}
}
