package fingerprint

import (
	"regexp"
	"strings"
	"unicode"
)

// lowercaseAfterPeriod catches "sentence. next" continuations that skip the
// capital, a strong informality signal in Latin-script text.
var lowercaseAfterPeriod = regexp.MustCompile(`[.!?]\s+[a-z]`)

// missingApostrophe catches possessive/contraction forms typed without the
// apostrophe ("dont", "todays post").
var missingApostrophe = regexp.MustCompile(`\b(dont|cant|wont|isnt|arent|didnt|doesnt|im|ive|id|youre|theyre|whats|thats|lets)\b`)

func typingHabits(texts []string) *TypingHabits {
	h := &TypingHabits{}
	n := len(texts)

	var allLower, lowerAfterPeriod, noComma, noTerminal, missingApos int
	found := map[string]bool{}

	for _, t := range texts {
		if isAllLowercase(t) {
			allLower++
		}
		if lowercaseAfterPeriod.MatchString(t) {
			lowerAfterPeriod++
		}
		if !strings.Contains(t, ",") {
			noComma++
		}
		if !endsWithPunctuation(strings.TrimSpace(t)) {
			noTerminal++
		}
		lower := strings.ToLower(t)
		if missingApostrophe.MatchString(lower) {
			missingApos++
		}
		for _, c := range informalContractions {
			if strings.Contains(lower, c) {
				found[c] = true
			}
		}
	}

	h.AllLowercasePct = pct(allLower, n)
	h.LowercaseAfterPeriodPct = pct(lowerAfterPeriod, n)
	h.NoCommaPct = pct(noComma, n)
	h.NoTerminalPct = pct(noTerminal, n)
	h.MissingApostrophePct = pct(missingApos, n)
	for _, c := range informalContractions {
		if found[c] {
			h.Contractions = append(h.Contractions, c)
		}
	}
	h.Style = typingStyleFor(h)
	return h
}

// isAllLowercase reports whether text has letters and none of them are
// uppercase. Caseless scripts (Hangul) return false unless Latin letters
// are present, so the signal stays meaningful on mixed corpora.
func isAllLowercase(text string) bool {
	hasCased := false
	for _, r := range text {
		if unicode.IsUpper(r) {
			return false
		}
		if unicode.IsLower(r) {
			hasCased = true
		}
	}
	return hasCased
}

func typingStyleFor(h *TypingHabits) TypingStyle {
	informality := 0
	if h.AllLowercasePct > 50 {
		informality += 2
	}
	if h.NoTerminalPct > 50 {
		informality++
	}
	if h.NoCommaPct > 70 {
		informality++
	}
	if h.MissingApostrophePct > 30 {
		informality++
	}
	if h.LowercaseAfterPeriodPct > 20 {
		informality++
	}
	if len(h.Contractions) >= 3 {
		informality++
	}

	switch {
	case informality == 0:
		return TypingFormal
	case informality <= 2:
		return TypingCasual
	case informality <= 4:
		return TypingLazy
	default:
		return TypingChaotic
	}
}
