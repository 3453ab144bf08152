// Package config loads and validates the .typetone.yml configuration,
// layering file values over defaults and TYPETONE_* environment
// variables over both.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// DefaultPath is the conventional config file location.
const DefaultPath = ".typetone.yml"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (TYPETONE_*). A missing file is not an
// error; defaults apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// TYPETONE_LANGUAGE -> language, TYPETONE_DATA_DIR -> data_dir, etc.
	if err := k.Load(env.Provider("TYPETONE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "TYPETONE_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validBackends is the set of recognized capability backends.
var validBackends = map[Backend]bool{
	BackendOpenAI: true,
	BackendOllama: true,
	BackendNone:   true,
	"":            true,
}

// validStrategies is the set of recognized selection strategies.
var validStrategies = map[string]bool{
	"similarity": true,
	"engagement": true,
	"hybrid":     true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !validBackends[c.EmbeddingBackend] {
		return fmt.Errorf("invalid embedding_backend %q: must be one of openai, ollama, none", c.EmbeddingBackend)
	}
	if !validBackends[c.Enrich.Backend] {
		return fmt.Errorf("invalid enrich backend %q: must be one of openai, ollama, none", c.Enrich.Backend)
	}

	if c.Language != "korean" && c.Language != "latin" {
		return fmt.Errorf("invalid language %q: must be korean or latin", c.Language)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive")
	}
	if c.HardCapRunes <= 0 {
		return fmt.Errorf("hard_cap_runes must be positive")
	}

	if c.Selector.Strategy != "" && !validStrategies[c.Selector.Strategy] {
		return fmt.Errorf("invalid selector strategy %q: must be one of similarity, engagement, hybrid", c.Selector.Strategy)
	}
	if c.Selector.Limit < 0 {
		return fmt.Errorf("selector limit must be non-negative")
	}

	if c.Enrich.RPM < 0 {
		return fmt.Errorf("enrich rpm must be non-negative")
	}

	w := c.Weights
	for _, v := range []float64{w.Constraint, w.Length, w.Punctuation, w.Vocabulary, w.AlgorithmFit, w.Hook, w.ReplyTrigger} {
		if v < 0 {
			return fmt.Errorf("ranker weights must be non-negative")
		}
	}

	return nil
}

// APIKeyEnvVar returns the conventional environment variable name for
// the API key of the given backend.
func APIKeyEnvVar(b Backend) string {
	if b == BackendOpenAI {
		return "OPENAI_API_KEY"
	}
	return ""
}
