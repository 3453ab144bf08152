// Package ranker scores machine-generated candidate texts against a style
// fingerprint and its constraint set, and orders them best first.
package ranker

// ScoreBreakdown holds the seven sub-scores, each in [0,1], and the
// weighted final score.
type ScoreBreakdown struct {
	Constraint   float64 `json:"constraint"`
	Length       float64 `json:"length"`
	Punctuation  float64 `json:"punctuation"`
	Vocabulary   float64 `json:"vocabulary"`
	AlgorithmFit float64 `json:"algorithm_fit"`
	Hook         float64 `json:"hook"`
	ReplyTrigger float64 `json:"reply_trigger"`
	Final        float64 `json:"final"`
}

// RankedCandidate is one scored candidate. Index is the candidate's
// position in the original input, used for stable tie-breaking.
type RankedCandidate struct {
	Text   string         `json:"text"`
	Index  int            `json:"index"`
	Scores ScoreBreakdown `json:"scores"`
}

// Weights are the sub-score blend. The defaults are empirically chosen
// constants; they are exposed as configuration rather than trusted as
// universally right.
type Weights struct {
	Constraint   float64 `json:"constraint" yaml:"constraint" koanf:"constraint"`
	Length       float64 `json:"length" yaml:"length" koanf:"length"`
	Punctuation  float64 `json:"punctuation" yaml:"punctuation" koanf:"punctuation"`
	Vocabulary   float64 `json:"vocabulary" yaml:"vocabulary" koanf:"vocabulary"`
	AlgorithmFit float64 `json:"algorithm_fit" yaml:"algorithm_fit" koanf:"algorithm_fit"`
	Hook         float64 `json:"hook" yaml:"hook" koanf:"hook"`
	ReplyTrigger float64 `json:"reply_trigger" yaml:"reply_trigger" koanf:"reply_trigger"`
}

// DefaultWeights returns the standard blend, summing to 1.0.
func DefaultWeights() Weights {
	return Weights{
		Constraint:   0.25,
		Length:       0.10,
		Punctuation:  0.10,
		Vocabulary:   0.10,
		AlgorithmFit: 0.20,
		Hook:         0.15,
		ReplyTrigger: 0.10,
	}
}

// sum is used to renormalize user-supplied weights.
func (w Weights) sum() float64 {
	return w.Constraint + w.Length + w.Punctuation + w.Vocabulary +
		w.AlgorithmFit + w.Hook + w.ReplyTrigger
}

func (w Weights) apply(s ScoreBreakdown) float64 {
	total := w.sum()
	if total <= 0 {
		w = DefaultWeights()
		total = 1.0
	}
	return (w.Constraint*s.Constraint +
		w.Length*s.Length +
		w.Punctuation*s.Punctuation +
		w.Vocabulary*s.Vocabulary +
		w.AlgorithmFit*s.AlgorithmFit +
		w.Hook*s.Hook +
		w.ReplyTrigger*s.ReplyTrigger) / total
}
