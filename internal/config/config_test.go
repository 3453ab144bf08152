package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.EmbeddingBackend != BackendNone {
		t.Errorf("expected default embedding backend %q, got %q", BackendNone, cfg.EmbeddingBackend)
	}
	if cfg.Language != "korean" {
		t.Errorf("expected default language korean, got %q", cfg.Language)
	}
	if cfg.DataDir != ".typetone" {
		t.Errorf("expected default data_dir .typetone, got %q", cfg.DataDir)
	}
	if cfg.TimeoutSeconds != 10 {
		t.Errorf("expected default timeout 10s, got %d", cfg.TimeoutSeconds)
	}
	if cfg.HardCapRunes != 280 {
		t.Errorf("expected default hard cap 280, got %d", cfg.HardCapRunes)
	}
	if cfg.Selector.Strategy != "hybrid" {
		t.Errorf("expected default strategy hybrid, got %q", cfg.Selector.Strategy)
	}
	if cfg.Selector.Limit != 5 {
		t.Errorf("expected default limit 5, got %d", cfg.Selector.Limit)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.typetone.yml")

	original := DefaultConfig()
	original.EmbeddingBackend = BackendOpenAI
	original.EmbeddingModel = "text-embedding-3-large"
	original.Language = "latin"
	original.DataDir = "data"
	original.Selector.Limit = 8
	original.Weights.Hook = 0.3

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.EmbeddingBackend != original.EmbeddingBackend {
		t.Errorf("embedding_backend: got %q, want %q", loaded.EmbeddingBackend, original.EmbeddingBackend)
	}
	if loaded.EmbeddingModel != original.EmbeddingModel {
		t.Errorf("embedding_model: got %q, want %q", loaded.EmbeddingModel, original.EmbeddingModel)
	}
	if loaded.Language != original.Language {
		t.Errorf("language: got %q, want %q", loaded.Language, original.Language)
	}
	if loaded.DataDir != original.DataDir {
		t.Errorf("data_dir: got %q, want %q", loaded.DataDir, original.DataDir)
	}
	if loaded.Selector.Limit != original.Selector.Limit {
		t.Errorf("selector limit: got %d, want %d", loaded.Selector.Limit, original.Selector.Limit)
	}
	if loaded.Weights.Hook != original.Weights.Hook {
		t.Errorf("hook weight: got %f, want %f", loaded.Weights.Hook, original.Weights.Hook)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Language != "korean" {
		t.Errorf("expected default language, got %q", cfg.Language)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	os.Setenv("TYPETONE_LANGUAGE", "latin")
	defer os.Unsetenv("TYPETONE_LANGUAGE")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Language != "latin" {
		t.Errorf("env override failed: got %q, want latin", loaded.Language)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalidBackend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EmbeddingBackend = "cohere"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown embedding backend")
	}
}

func TestValidateInvalidLanguage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Language = "klingon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown language")
	}
}

func TestValidateEmptyDataDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty data_dir")
	}
}

func TestValidateNonPositiveTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutSeconds = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero timeout_seconds")
	}
}

func TestValidateInvalidStrategy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Selector.Strategy = "random"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown selector strategy")
	}
}

func TestValidateNegativeWeight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights.Length = -0.1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative weight")
	}
}

func TestDefaultModels(t *testing.T) {
	if got := DefaultEmbeddingModel(BackendOpenAI); got != "text-embedding-3-small" {
		t.Errorf("openai embedding default = %q", got)
	}
	if got := DefaultEmbeddingModel(BackendOllama); got != "nomic-embed-text" {
		t.Errorf("ollama embedding default = %q", got)
	}
	if got := DefaultEnrichModel(BackendNone); got != "" {
		t.Errorf("none enrich default should be empty, got %q", got)
	}
}

func TestAPIKeyEnvVar(t *testing.T) {
	tests := []struct {
		backend Backend
		want    string
	}{
		{BackendOpenAI, "OPENAI_API_KEY"},
		{BackendOllama, ""},
		{BackendNone, ""},
	}
	for _, tt := range tests {
		got := APIKeyEnvVar(tt.backend)
		if got != tt.want {
			t.Errorf("APIKeyEnvVar(%q) = %q, want %q", tt.backend, got, tt.want)
		}
	}
}
