package fingerprint

import (
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/typetone/typetone/internal/textkit"
)

const (
	lineBreakerPct    = 40.0
	heavyFormatterPct = 70.0
)

func lineStructure(texts []string) *LineStructure {
	l := &LineStructure{}
	n := len(texts)

	var multi, listMarker int
	lineCounts := make([]float64, 0, n)

	for _, t := range texts {
		lines := textkit.Lines(t)
		lineCounts = append(lineCounts, float64(len(lines)))
		if len(lines) > 1 {
			multi++
		}
		if textkit.HasBulletMarker(t) || textkit.HasNumberedMarker(t) {
			listMarker++
		}
	}

	l.MultiLinePct = pct(multi, n)
	if len(lineCounts) > 0 {
		l.AvgLinesPerSample, _ = stats.Mean(lineCounts)
	}
	l.ListMarkerPct = pct(listMarker, n)

	switch {
	case l.MultiLinePct >= heavyFormatterPct && l.ListMarkerPct > 20:
		l.Style = LineHeavyFormatter
	case l.MultiLinePct >= lineBreakerPct:
		l.Style = LineBreaker
	default:
		l.Style = LineSingleBlock
	}
	return l
}

func formatPreferences(texts []string) *FormatPreferences {
	f := &FormatPreferences{}
	n := len(texts)

	var bullets, numbered, arrows, parens, quotes, threads, hashtags int
	for _, t := range texts {
		if textkit.HasBulletMarker(t) {
			bullets++
		}
		if textkit.HasNumberedMarker(t) {
			numbered++
		}
		if textkit.HasArrowGlyph(t) {
			arrows++
		}
		if strings.ContainsRune(t, '(') && strings.ContainsRune(t, ')') {
			parens++
		}
		if strings.ContainsAny(t, `"“”'‘’「」`) {
			quotes++
		}
		if textkit.HasThreadMarker(t) {
			threads++
		}
		if textkit.HasHashtag(t) {
			hashtags++
		}
	}

	f.BulletPct = pct(bullets, n)
	f.NumberedPct = pct(numbered, n)
	f.ArrowPct = pct(arrows, n)
	f.ParenthesesPct = pct(parens, n)
	f.QuotePct = pct(quotes, n)
	f.ThreadMarkerPct = pct(threads, n)
	f.HashtagPct = pct(hashtags, n)
	return f
}
