package ranker

import (
	"strings"

	"github.com/typetone/typetone/internal/textkit"
)

// FitScorer estimates how well a text plays with the platform's ranking
// algorithm. It is its own strategy so platform-specific heuristics can be
// replaced without touching the style scoring.
type FitScorer interface {
	ScoreFit(text string) float64
}

// DwellBand is the body-length range (runes) associated with high reader
// dwell time on short-text platforms.
const (
	dwellBandMin = 70
	dwellBandMax = 200
)

// TimelineFit is the default platform heuristic: outbound links get
// deprioritized, questions and line breaks drive replies and dwell time.
type TimelineFit struct{}

func (TimelineFit) ScoreFit(text string) float64 {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}

	score := 0.5

	if textkit.HasURL(trimmed) {
		score -= 0.25
	} else {
		score += 0.15
	}

	if strings.Contains(trimmed, "?") {
		score += 0.10
	}

	runeLen := len([]rune(trimmed))
	if runeLen >= dwellBandMin && runeLen <= dwellBandMax {
		score += 0.15
	} else {
		score -= 0.05
	}

	if len(textkit.Lines(trimmed)) > 1 {
		score += 0.10
	}

	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
