package fingerprint

import (
	"strings"
	"unicode"

	"github.com/typetone/typetone/internal/textkit"
)

// classifyOpening runs the ordered opening checks; the first match wins.
func classifyOpening(text string) OpeningKind {
	first := textkit.FirstSentence(text)
	if first == "" {
		return OpenProvocation
	}
	lower := strings.ToLower(first)
	words := textkit.Words(first)

	switch {
	case strings.Contains(text[:min(len(text), len(first)+1)], "?") || startsWithAny(lower, questionWords):
		return OpenQuestion
	case containsAny(lower, storyMarkers):
		return OpenStory
	case startsWithDigit(first) || strings.Contains(first, "%"):
		return OpenData
	case containsAny(lower, directAddressMarkers):
		return OpenDirectAddress
	case containsAny(lower, contrastMarkers):
		return OpenContrast
	case containsAny(lower, mysteryMarkers) || (len(words) <= 3 && strings.Contains(text, "...")):
		return OpenMystery
	case containsAny(lower, boldClaimMarkers) || strings.Contains(first, "!"):
		return OpenBoldClaim
	default:
		return OpenProvocation
	}
}

func openingPsychology(texts []string) *OpeningPsychology {
	o := &OpeningPsychology{}
	n := len(texts)

	counts := map[OpeningKind]int{}
	for _, t := range texts {
		counts[classifyOpening(t)]++
	}

	o.QuestionPct = pct(counts[OpenQuestion], n)
	o.StoryPct = pct(counts[OpenStory], n)
	o.DataPct = pct(counts[OpenData], n)
	o.DirectAddressPct = pct(counts[OpenDirectAddress], n)
	o.ContrastPct = pct(counts[OpenContrast], n)
	o.MysteryPct = pct(counts[OpenMystery], n)
	o.BoldClaimPct = pct(counts[OpenBoldClaim], n)
	o.ProvocationPct = pct(counts[OpenProvocation], n)
	o.Dominant = dominantKind(counts, OpenProvocation)
	return o
}

// classifyClosing looks at the final segment (the last line, or the whole
// text when single-line).
func classifyClosing(text string) ClosingKind {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return CloseNone
	}
	lines := textkit.Lines(trimmed)
	last := trimmed
	if len(lines) > 0 {
		last = lines[len(lines)-1]
	}
	lower := strings.ToLower(last)

	switch {
	case strings.HasSuffix(last, "?"):
		return CloseQuestion
	case strings.HasSuffix(last, "...") || strings.HasSuffix(last, "…"):
		return CloseEllipsis
	case textkit.EndsWithEmoji(last):
		return CloseEmoji
	case containsAny(lower, ctaPhrases):
		return CloseCallToAction
	case strings.HasSuffix(last, ".") || strings.HasSuffix(last, "다") || strings.HasSuffix(last, "!"):
		return CloseDeclarative
	default:
		return CloseNone
	}
}

func closingStrategy(texts []string) *ClosingStrategy {
	c := &ClosingStrategy{}
	n := len(texts)

	counts := map[ClosingKind]int{}
	for _, t := range texts {
		counts[classifyClosing(t)]++
	}

	c.QuestionPct = pct(counts[CloseQuestion], n)
	c.EllipsisPct = pct(counts[CloseEllipsis], n)
	c.EmojiPct = pct(counts[CloseEmoji], n)
	c.CallToActionPct = pct(counts[CloseCallToAction], n)
	c.DeclarativePct = pct(counts[CloseDeclarative], n)
	c.NoClosePct = pct(counts[CloseNone], n)
	c.Dominant = dominantKind(counts, CloseNone)
	return c
}

// classifyThought decides how one sample organizes its idea.
func classifyThought(text string) ThoughtKind {
	lower := strings.ToLower(text)
	sents := textkit.Sentences(text)

	switch {
	case textkit.HasBulletMarker(text) || textkit.HasNumberedMarker(text):
		return ThoughtList
	case containsAny(lower, conclusionFirstMarkers):
		return ThoughtConclusionFirst
	case containsAny(lower, buildUpMarkers):
		return ThoughtBuildUp
	case len(sents) >= 2 && containsAny(lower, contrastMarkers):
		return ThoughtContrast
	case len(sents) <= 1:
		return ThoughtSingle
	default:
		return ThoughtMulti
	}
}

func thoughtStructure(texts []string) *ThoughtStructure {
	t := &ThoughtStructure{}
	n := len(texts)

	counts := map[ThoughtKind]int{}
	for _, txt := range texts {
		counts[classifyThought(txt)]++
	}

	t.ListPct = pct(counts[ThoughtList], n)
	t.SinglePct = pct(counts[ThoughtSingle], n)
	t.ContrastPct = pct(counts[ThoughtContrast], n)
	t.BuildUpPct = pct(counts[ThoughtBuildUp], n)
	t.ConclusionFirstPct = pct(counts[ThoughtConclusionFirst], n)
	t.MultiPct = pct(counts[ThoughtMulti], n)
	t.Dominant = dominantKind(counts, ThoughtMulti)
	return t
}

// dominantKind picks the most frequent key, falling back when empty.
// Equal counts resolve by string order for determinism.
func dominantKind[K ~string](counts map[K]int, fallback K) K {
	best := fallback
	bestCount := -1
	for k, c := range counts {
		if c > bestCount || (c == bestCount && k < best) {
			best = k
			bestCount = c
		}
	}
	if bestCount <= 0 {
		return fallback
	}
	return best
}

func startsWithAny(lower string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

func startsWithDigit(s string) bool {
	for _, r := range s {
		return unicode.IsDigit(r)
	}
	return false
}
