// Package examples retrieves few-shot reference samples for a topic. It is
// the only part of the core that calls out to external capabilities
// (embedding and similarity search), and it degrades through a documented
// fallback chain when either is missing or failing.
package examples

import "github.com/typetone/typetone/internal/corpus"

// Strategy selects how examples are chosen.
type Strategy string

const (
	StrategySimilarity Strategy = "similarity"
	StrategyEngagement Strategy = "engagement"
	StrategyHybrid     Strategy = "hybrid"
)

// Fallback reason tags, surfaced on the pool and in logs.
const (
	ReasonNoEmbedder      = "no_embedder"
	ReasonNoIndex         = "no_index"
	ReasonEmbedFailed     = "embed_failed"
	ReasonSearchFailed    = "search_failed"
	ReasonSearchEmpty     = "search_empty"
	ReasonStoreError      = "store_error"
	ReasonCuratedFallback = "curated_fallback"
)

// ScoredExample is one selected sample with its retrieval scores.
// Similarity and HybridScore are only meaningful for the strategies that
// compute them.
type ScoredExample struct {
	Sample      corpus.Sample `json:"sample"`
	Similarity  float64       `json:"similarity,omitempty"`
	HybridScore float64       `json:"hybrid_score,omitempty"`
}

// ExamplePool is the ordered few-shot reference set for one request.
type ExamplePool struct {
	Examples []ScoredExample `json:"examples"`
	Strategy Strategy        `json:"strategy"`
	// FallbackReason is empty when the requested strategy ran as asked;
	// otherwise it names the step in the fallback chain that fired.
	FallbackReason string `json:"fallback_reason,omitempty"`
}

// Texts returns the example contents in pool order, for vocabulary
// reference building in the ranker.
func (p *ExamplePool) Texts() []string {
	out := make([]string, len(p.Examples))
	for i, e := range p.Examples {
		out[i] = e.Sample.Content
	}
	return out
}
