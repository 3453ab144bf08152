package examples

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/typetone/typetone/internal/corpus"
	"github.com/typetone/typetone/internal/embeddings"
	"github.com/typetone/typetone/internal/ranker"
	"github.com/typetone/typetone/internal/samplestore"
)

const (
	defaultLimit   = 5
	defaultTimeout = 10 * time.Second

	// The hybrid strategy scores a wider candidate pool than it returns.
	hybridPoolFloor    = 20
	hybridSmallLimit   = 15 // limits above this just use the limit itself
	similarityWeight   = 0.4
	engagementWeight   = 0.35
	algorithmFitWeight = 0.25
)

// Deps are the selector's collaborators. Embedder and Index are optional;
// without them every strategy degrades to engagement ordering.
type Deps struct {
	Store    *corpus.Store
	Embedder embeddings.Embedder
	Index    samplestore.Index
	Fit      ranker.FitScorer
	Logger   *logrus.Logger
	// Timeout bounds each external capability call.
	Timeout time.Duration
	// Curated is the last-resort pool when even the store is empty,
	// typically a fingerprint's retained example samples.
	Curated []corpus.Sample
}

// Selector picks few-shot reference samples per request.
type Selector struct {
	deps Deps
}

// NewSelector creates a selector. Missing optional deps get working
// defaults.
func NewSelector(deps Deps) *Selector {
	if deps.Fit == nil {
		deps.Fit = ranker.TimelineFit{}
	}
	if deps.Logger == nil {
		deps.Logger = logrus.New()
	}
	if deps.Timeout <= 0 {
		deps.Timeout = defaultTimeout
	}
	return &Selector{deps: deps}
}

// Select returns at most limit examples for the topic from the given
// corpus. Unknown strategies run as hybrid. The returned pool is never
// nil; when every source is empty the pool is empty and tagged with the
// terminal fallback reason.
func (s *Selector) Select(ctx context.Context, topic, corpusID string, limit int, strategy Strategy) (*ExamplePool, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	switch strategy {
	case StrategyEngagement:
		return s.selectEngagement(ctx, corpusID, limit, "")
	case StrategySimilarity:
		return s.selectSimilarity(ctx, topic, corpusID, limit)
	default:
		return s.selectHybrid(ctx, topic, corpusID, limit)
	}
}

// selectEngagement is the base of the fallback chain: highest-engagement
// samples, unmodified. reason carries the tag of the step that degraded
// here, or "" when engagement was asked for directly.
func (s *Selector) selectEngagement(ctx context.Context, corpusID string, limit int, reason string) (*ExamplePool, error) {
	pool := &ExamplePool{Strategy: StrategyEngagement, FallbackReason: reason}

	if s.deps.Store != nil {
		samples, err := s.deps.Store.TopEngagement(ctx, corpusID, limit)
		if err != nil {
			s.log(corpusID, ReasonStoreError).WithError(err).Warn("engagement lookup failed")
		}
		for _, smp := range samples {
			pool.Examples = append(pool.Examples, ScoredExample{Sample: smp})
		}
	}

	if len(pool.Examples) == 0 {
		// Terminal fallback: the curated set.
		pool.FallbackReason = ReasonCuratedFallback
		s.log(corpusID, ReasonCuratedFallback).Info("serving curated fallback examples")
		for i, smp := range s.deps.Curated {
			if i >= limit {
				break
			}
			pool.Examples = append(pool.Examples, ScoredExample{Sample: smp})
		}
	}
	return pool, nil
}

// selectSimilarity retrieves by topic similarity, degrading to engagement
// on any capability failure.
func (s *Selector) selectSimilarity(ctx context.Context, topic, corpusID string, limit int) (*ExamplePool, error) {
	matches, reason := s.similarTo(ctx, topic, corpusID, limit)
	if reason != "" {
		return s.selectEngagement(ctx, corpusID, limit, reason)
	}

	pool := &ExamplePool{Strategy: StrategySimilarity}
	for _, m := range matches {
		pool.Examples = append(pool.Examples, ScoredExample{
			Sample:     s.resolveSample(ctx, m),
			Similarity: m.Similarity,
		})
	}
	return pool, nil
}

// selectHybrid blends similarity, engagement, and platform fit over a
// wider candidate pool, then applies the diversity filter.
func (s *Selector) selectHybrid(ctx context.Context, topic, corpusID string, limit int) (*ExamplePool, error) {
	poolSize := limit
	if limit <= hybridSmallLimit && poolSize < hybridPoolFloor {
		poolSize = hybridPoolFloor
	}

	matches, reason := s.similarTo(ctx, topic, corpusID, poolSize)
	if reason != "" {
		return s.selectEngagement(ctx, corpusID, limit, reason)
	}

	maxEngagement := 0.0
	for _, m := range matches {
		if m.Engagement > maxEngagement {
			maxEngagement = m.Engagement
		}
	}

	scored := make([]ScoredExample, 0, len(matches))
	for _, m := range matches {
		normEngagement := 0.0
		if maxEngagement > 0 {
			normEngagement = m.Engagement / maxEngagement
		}
		hybrid := similarityWeight*m.Similarity +
			engagementWeight*normEngagement +
			algorithmFitWeight*s.deps.Fit.ScoreFit(m.Content)
		scored = append(scored, ScoredExample{
			Sample:      s.resolveSample(ctx, m),
			Similarity:  m.Similarity,
			HybridScore: hybrid,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].HybridScore > scored[j].HybridScore
	})

	return &ExamplePool{
		Strategy: StrategyHybrid,
		Examples: diversityFilter(scored, limit),
	}, nil
}

// similarTo runs the embed + search capability calls under the configured
// timeout. A non-empty reason means the caller should degrade.
func (s *Selector) similarTo(ctx context.Context, topic, corpusID string, topK int) ([]samplestore.Match, string) {
	if s.deps.Embedder == nil {
		s.log(corpusID, ReasonNoEmbedder).Debug("no embedder configured")
		return nil, ReasonNoEmbedder
	}
	if s.deps.Index == nil {
		s.log(corpusID, ReasonNoIndex).Debug("no similarity index configured")
		return nil, ReasonNoIndex
	}

	callCtx, cancel := context.WithTimeout(ctx, s.deps.Timeout)
	defer cancel()

	vector, err := s.deps.Embedder.Embed(callCtx, topic)
	if err != nil {
		s.log(corpusID, ReasonEmbedFailed).WithError(err).Warn("topic embedding failed")
		return nil, ReasonEmbedFailed
	}

	matches, err := s.deps.Index.SearchVector(callCtx, vector, corpusID, topK)
	if err != nil {
		s.log(corpusID, ReasonSearchFailed).WithError(err).Warn("similarity search failed")
		return nil, ReasonSearchFailed
	}
	if len(matches) == 0 {
		s.log(corpusID, ReasonSearchEmpty).Info("similarity search returned nothing")
		return nil, ReasonSearchEmpty
	}
	return matches, ""
}

// resolveSample upgrades a search match to the full stored sample when the
// store has it; otherwise the match content stands in.
func (s *Selector) resolveSample(ctx context.Context, m samplestore.Match) corpus.Sample {
	if s.deps.Store != nil {
		if full, err := s.deps.Store.GetSample(ctx, m.SampleID); err == nil && full != nil {
			return *full
		}
	}
	return corpus.Sample{ID: m.SampleID, Content: m.Content, Likes: int(m.Engagement)}
}

func (s *Selector) log(corpusID, reason string) *logrus.Entry {
	return s.deps.Logger.WithFields(logrus.Fields{
		"corpus": corpusID,
		"reason": reason,
	})
}
