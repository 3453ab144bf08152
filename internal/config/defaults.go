package config

import "github.com/typetone/typetone/internal/ranker"

// embeddingDefaults maps each backend to its default embedding model.
var embeddingDefaults = map[Backend]string{
	BackendOpenAI: "text-embedding-3-small",
	BackendOllama: "nomic-embed-text",
}

// enrichDefaults maps each backend to its default completion model.
var enrichDefaults = map[Backend]string{
	BackendOpenAI: "gpt-4o-mini",
	BackendOllama: "llama3",
}

// DefaultEmbeddingModel returns the default embedding model for a backend.
func DefaultEmbeddingModel(b Backend) string {
	return embeddingDefaults[b]
}

// DefaultEnrichModel returns the default completion model for a backend.
func DefaultEnrichModel(b Backend) string {
	return enrichDefaults[b]
}

// DefaultConfig returns a Config with sensible defaults. Both capability
// backends default to none so a fresh install works fully offline.
func DefaultConfig() *Config {
	return &Config{
		EmbeddingBackend: BackendNone,
		Language:         "korean",
		DataDir:          ".typetone",
		TimeoutSeconds:   10,
		HardCapRunes:     280,
		Weights:          ranker.DefaultWeights(),
		Selector: SelectorConfig{
			Strategy: "hybrid",
			Limit:    5,
		},
		Enrich: EnrichConfig{
			Backend: BackendNone,
			RPM:     30,
		},
	}
}
