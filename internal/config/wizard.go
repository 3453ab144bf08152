package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and saves the
// resulting Config to .typetone.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to typetone! Let's configure your project.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Corpus language.
	langPrompt := promptui.Select{
		Label: "Corpus language",
		Items: []string{
			"korean: Hangul script, verb-final heuristics",
			"latin: English and other Latin-script text",
		},
	}
	langIdx, _, err := langPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("language selection: %w", err)
	}
	cfg.Language = []string{"korean", "latin"}[langIdx]

	// 2. Embedding backend. Similarity selection degrades to engagement
	// ordering without one.
	embedPrompt := promptui.Select{
		Label: "Embedding backend (none disables similarity search)",
		Items: []string{"none", "openai", "ollama"},
	}
	_, embedStr, err := embedPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("embedding selection: %w", err)
	}
	cfg.EmbeddingBackend = Backend(embedStr)
	if cfg.EmbeddingBackend != BackendNone {
		cfg.EmbeddingModel = DefaultEmbeddingModel(cfg.EmbeddingBackend)
	}

	// 3. Enrichment backend.
	enrichPrompt := promptui.Select{
		Label: "Enrichment backend (none skips the voice portrait)",
		Items: []string{"none", "openai", "ollama"},
	}
	_, enrichStr, err := enrichPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("enrichment selection: %w", err)
	}
	cfg.Enrich.Backend = Backend(enrichStr)
	if cfg.Enrich.Backend != BackendNone {
		cfg.Enrich.Model = DefaultEnrichModel(cfg.Enrich.Backend)
	}

	// 4. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory for the sample store and vector index",
		Default: cfg.DataDir,
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	cfg.DataDir = dataDir

	// 5. Example limit.
	limitPrompt := promptui.Prompt{
		Label:   "Examples per prompt",
		Default: strconv.Itoa(cfg.Selector.Limit),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				return fmt.Errorf("must be a non-negative integer")
			}
			return nil
		},
	}
	limitStr, err := limitPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("example limit: %w", err)
	}
	cfg.Selector.Limit, _ = strconv.Atoi(limitStr)

	if envVar := APIKeyEnvVar(cfg.EmbeddingBackend); envVar != "" && os.Getenv(envVar) == "" {
		fmt.Printf("\nNote: Set %s in your environment before running typetone ingest.\n", envVar)
	}

	if err := cfg.Save(DefaultPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultPath)
	return cfg, nil
}
