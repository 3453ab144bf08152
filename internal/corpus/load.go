package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
)

// sampleFile is the on-disk shape collectors produce: either a bare array
// of samples or a wrapper object with a source id.
type sampleFile struct {
	SourceID string   `json:"source_id"`
	Samples  []Sample `json:"samples"`
}

// LoadFile reads one collector JSON file. Samples without an id get one
// assigned so they can be upserted idempotently later.
func LoadFile(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var wrapped sampleFile
	if err := json.Unmarshal(data, &wrapped); err != nil {
		// Fall back to a bare array. An empty wrapper is not an error;
		// it is an empty corpus.
		var bare []Sample
		if arrErr := json.Unmarshal(data, &bare); arrErr != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		wrapped.Samples = bare
	}

	if wrapped.SourceID == "" {
		base := filepath.Base(path)
		wrapped.SourceID = base[:len(base)-len(filepath.Ext(base))]
	}
	for i := range wrapped.Samples {
		if wrapped.Samples[i].ID == "" {
			wrapped.Samples[i].ID = uuid.New().String()
		}
		if wrapped.Samples[i].Kind == "" {
			wrapped.Samples[i].Kind = KindOriginal
		}
	}

	return &Corpus{SourceID: wrapped.SourceID, Samples: wrapped.Samples}, nil
}

// ExpandGlobs resolves doublestar patterns to a deduplicated file list.
// Plain paths pass through untouched.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var files []string
	for _, p := range patterns {
		if !containsGlobMeta(p) {
			if !seen[p] {
				seen[p] = true
				files = append(files, p)
			}
			continue
		}
		base, pattern := doublestar.SplitPattern(p)
		matches, err := doublestar.Glob(os.DirFS(base), pattern)
		if err != nil {
			return nil, fmt.Errorf("expanding %s: %w", p, err)
		}
		for _, m := range matches {
			full := filepath.Join(base, m)
			if !seen[full] {
				seen[full] = true
				files = append(files, full)
			}
		}
	}
	return files, nil
}

func containsGlobMeta(p string) bool {
	for _, r := range p {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
