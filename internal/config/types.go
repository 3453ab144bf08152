package config

import "github.com/typetone/typetone/internal/ranker"

// Backend identifies an embedding or completion backend.
type Backend string

const (
	BackendOpenAI Backend = "openai"
	BackendOllama Backend = "ollama"
	BackendNone   Backend = "none"
)

// SelectorConfig holds example-selection settings.
type SelectorConfig struct {
	Strategy string `yaml:"strategy" koanf:"strategy"`
	Limit    int    `yaml:"limit" koanf:"limit"`
}

// EnrichConfig holds qualitative-enrichment settings.
type EnrichConfig struct {
	Backend Backend `yaml:"backend" koanf:"backend"`
	Model   string  `yaml:"model" koanf:"model"`
	// RPM caps completion requests per minute. Zero disables the limiter.
	RPM int `yaml:"rpm" koanf:"rpm"`
}

// Config is the top-level typetone configuration, corresponding to
// .typetone.yml.
type Config struct {
	EmbeddingBackend Backend `yaml:"embedding_backend" koanf:"embedding_backend"`
	EmbeddingModel   string  `yaml:"embedding_model" koanf:"embedding_model"`

	// Language selects the morphology strategy used by the extractor.
	Language string `yaml:"language" koanf:"language"`

	// DataDir holds the sample database and the vector index.
	DataDir string `yaml:"data_dir" koanf:"data_dir"`

	// TimeoutSeconds bounds every embed and similarity-search call.
	TimeoutSeconds int `yaml:"timeout_seconds" koanf:"timeout_seconds"`

	// HardCapRunes is the platform post-length ceiling.
	HardCapRunes int `yaml:"hard_cap_runes" koanf:"hard_cap_runes"`

	Weights  ranker.Weights `yaml:"weights" koanf:"weights"`
	Selector SelectorConfig `yaml:"selector" koanf:"selector"`
	Enrich   EnrichConfig   `yaml:"enrich" koanf:"enrich"`
}
