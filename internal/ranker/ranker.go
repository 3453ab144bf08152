package ranker

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/typetone/typetone/internal/constraints"
	"github.com/typetone/typetone/internal/fingerprint"
)

// Ranker scores and orders candidate texts. It carries no mutable state,
// so one Ranker can serve concurrent rankings.
type Ranker struct {
	weights Weights
	fit     FitScorer
}

// New creates a Ranker. Zero weights fall back to the defaults; a nil fit
// scorer falls back to the timeline heuristic.
func New(weights Weights, fit FitScorer) *Ranker {
	if weights.sum() <= 0 {
		weights = DefaultWeights()
	}
	if fit == nil {
		fit = TimelineFit{}
	}
	return &Ranker{weights: weights, fit: fit}
}

// Rank scores every candidate against the fingerprint and constraints and
// returns them sorted by final score descending. The sort is stable: equal
// scores keep their input order, and ranking the same input twice yields
// the same output. exampleTexts is the optional example pool used for
// vocabulary similarity; pass nil to fall back to the fingerprint's
// signature words.
//
// Candidates are scored in parallel; each breakdown depends only on its
// own text, so the only ordering constraint is the final sort.
func (r *Ranker) Rank(ctx context.Context, candidates []string, fp *fingerprint.Fingerprint, cs *constraints.ConstraintSet, exampleTexts []string) ([]RankedCandidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	ref := referenceWords(exampleTexts, fp)

	ranked := make([]RankedCandidate, len(candidates))
	g, ctx := errgroup.WithContext(ctx)
	for i, text := range candidates {
		i, text := i, text
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			ranked[i] = RankedCandidate{
				Text:   text,
				Index:  i,
				Scores: r.score(text, fp, cs, ref),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Scores.Final > ranked[j].Scores.Final
	})
	return ranked, nil
}

// score computes one candidate's breakdown. An effectively empty candidate
// zeroes the style sub-scores but still gets a constraint score, so the
// batch completes regardless.
func (r *Ranker) score(text string, fp *fingerprint.Fingerprint, cs *constraints.ConstraintSet, ref map[string]bool) ScoreBreakdown {
	s := ScoreBreakdown{}
	if cs != nil {
		s.Constraint = cs.Score(text)
	}

	if strings.TrimSpace(text) != "" {
		optimal := 0
		if cs != nil {
			optimal = cs.OptimalLength
		}
		s.Length = lengthScore(text, optimal)
		if fp != nil {
			s.Punctuation = punctuationScore(text, fp.Punctuation)
		}
		s.Vocabulary = vocabularyScore(text, ref)
		s.AlgorithmFit = r.fit.ScoreFit(text)
		s.Hook = hookScore(text)
		s.ReplyTrigger = replyTriggerScore(text)
	}

	s.Final = r.weights.apply(s)
	return s
}
