package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/typetone/typetone/internal/config"
	"github.com/typetone/typetone/internal/constraints"
	"github.com/typetone/typetone/internal/corpus"
	"github.com/typetone/typetone/internal/embeddings"
	"github.com/typetone/typetone/internal/enrich"
	"github.com/typetone/typetone/internal/fingerprint"
	"github.com/typetone/typetone/internal/samplestore"
	"github.com/typetone/typetone/internal/stylelang"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `typetone init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openStore opens the sample database under the configured data dir,
// creating the directory on first use.
func openStore(cfg *config.Config) (*corpus.Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data dir %s: %w", cfg.DataDir, err)
	}
	return corpus.OpenStore(filepath.Join(cfg.DataDir, "samples.db"))
}

// indexDir is where the vector index persists.
func indexDir(cfg *config.Config) string {
	return filepath.Join(cfg.DataDir, "index")
}

// newEmbedder creates an embedder from config, or nil when the backend
// is none. Similarity features simply stay off without one.
func newEmbedder(cfg *config.Config) (embeddings.Embedder, error) {
	model := cfg.EmbeddingModel
	if model == "" {
		model = config.DefaultEmbeddingModel(cfg.EmbeddingBackend)
	}

	switch cfg.EmbeddingBackend {
	case config.BackendOpenAI:
		apiKey := os.Getenv(config.APIKeyEnvVar(config.BackendOpenAI))
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required for OpenAI embeddings")
		}
		return embeddings.NewOpenAIEmbedder(apiKey, embeddings.OpenAIModel(model)), nil
	case config.BackendOllama:
		return embeddings.NewOllamaEmbedder(model, 768, ""), nil
	default:
		return nil, nil
	}
}

// loadIndex creates the vector index and loads any persisted state. A
// missing persisted index is fine on first run.
func loadIndex(cfg *config.Config, embedder embeddings.Embedder) (*samplestore.ChromemIndex, error) {
	if embedder == nil {
		return nil, nil
	}
	ix, err := samplestore.NewChromemIndex(embedder)
	if err != nil {
		return nil, fmt.Errorf("creating vector index: %w", err)
	}
	dir := indexDir(cfg)
	if _, statErr := os.Stat(dir); statErr == nil {
		if err := ix.Load(dir); err != nil {
			return nil, fmt.Errorf("loading vector index from %s: %w", dir, err)
		}
	}
	return ix, nil
}

// newExtractor builds the extractor with the configured morphology.
func newExtractor(cfg *config.Config) *fingerprint.Extractor {
	return fingerprint.NewExtractor(stylelang.ForName(cfg.Language))
}

// newEnricher creates the enrichment pass, or nil when no backend is
// configured.
func newEnricher(cfg *config.Config) (*enrich.Enricher, error) {
	if cfg.Enrich.Backend == "" || cfg.Enrich.Backend == config.BackendNone {
		return nil, nil
	}
	provider, err := enrich.NewProvider(string(cfg.Enrich.Backend), cfg.Enrich.Model)
	if err != nil {
		return nil, err
	}
	if cfg.Enrich.RPM > 0 {
		provider = enrich.NewRateLimitedProvider(provider, cfg.Enrich.RPM)
	}
	return enrich.NewEnricher(provider, cfg.Enrich.Model), nil
}

// capabilityTimeout converts the configured timeout to a duration.
func capabilityTimeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.TimeoutSeconds) * time.Second
}

// fingerprintFor loads a corpus from the store and extracts its
// fingerprint.
func fingerprintFor(ctx context.Context, cfg *config.Config, store *corpus.Store, corpusID string) (*fingerprint.Fingerprint, error) {
	c, err := store.LoadCorpus(ctx, corpusID)
	if err != nil {
		return nil, fmt.Errorf("loading corpus %s: %w", corpusID, err)
	}
	if len(c.Samples) == 0 {
		return nil, fmt.Errorf("corpus %s is empty; run `typetone ingest` first", corpusID)
	}
	return newExtractor(cfg).Extract(*c), nil
}

// constraintsFor is fingerprintFor plus synthesis.
func constraintsFor(ctx context.Context, cfg *config.Config, store *corpus.Store, corpusID string) (*fingerprint.Fingerprint, *constraints.ConstraintSet, error) {
	fp, err := fingerprintFor(ctx, cfg, store, corpusID)
	if err != nil {
		return nil, nil, err
	}
	cs := constraints.Synthesize(fp)
	cs.CapLengths(cfg.HardCapRunes)
	return fp, cs, nil
}
