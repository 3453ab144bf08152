package fingerprint

import (
	"strings"
	"unicode"
)

func punctuationProfile(texts []string) *PunctuationProfile {
	n := len(texts)
	p := &PunctuationProfile{}

	var commas, ellipses, excls, questions, colons, dashes int
	var endPeriod, endExcl, noTerminal int

	for _, t := range texts {
		commas += strings.Count(t, ",")
		ellipses += strings.Count(t, "...") + strings.Count(t, "…")
		excls += strings.Count(t, "!")
		questions += strings.Count(t, "?")
		colons += strings.Count(t, ":")
		dashes += strings.Count(t, " - ") + strings.Count(t, "—") + strings.Count(t, "–")

		trimmed := strings.TrimSpace(t)
		switch {
		case strings.HasSuffix(trimmed, "!"):
			endExcl++
		case strings.HasSuffix(trimmed, "."):
			endPeriod++
		case !endsWithPunctuation(trimmed):
			noTerminal++
		}
	}

	fn := float64(n)
	p.CommasPerSample = float64(commas) / fn
	p.EllipsesPerSample = float64(ellipses) / fn
	p.ExclamationsPerSample = float64(excls) / fn
	p.QuestionsPerSample = float64(questions) / fn
	p.ColonsPerSample = float64(colons) / fn
	p.DashesPerSample = float64(dashes) / fn
	p.EndsWithPeriodPct = pct(endPeriod, n)
	p.EndsWithExclamationPct = pct(endExcl, n)
	p.NoTerminalPct = pct(noTerminal, n)
	return p
}

func endsWithPunctuation(text string) bool {
	runes := []rune(text)
	if len(runes) == 0 {
		return false
	}
	last := runes[len(runes)-1]
	return unicode.IsPunct(last) || last == '…'
}

func capitalizationProfile(texts []string) *CapitalizationProfile {
	n := len(texts)
	c := &CapitalizationProfile{}

	var upper, lower, allCaps int
	for _, t := range texts {
		runes := []rune(strings.TrimSpace(t))
		if len(runes) == 0 {
			continue
		}
		switch {
		case unicode.IsUpper(runes[0]):
			upper++
		case unicode.IsLower(runes[0]):
			lower++
		}
		if hasAllCapsWord(t) {
			allCaps++
		}
	}

	c.StartsUpperPct = pct(upper, n)
	c.StartsLowerPct = pct(lower, n)
	c.AllCapsEmphasisPct = pct(allCaps, n)
	return c
}

// hasAllCapsWord reports whether text shouts with a word of 3+ capital
// letters. Acronym-heavy corpora will read as emphatic; that matches how
// they land on a timeline anyway.
func hasAllCapsWord(text string) bool {
	for _, f := range strings.Fields(text) {
		letters := 0
		caps := 0
		for _, r := range f {
			if unicode.IsLetter(r) {
				letters++
				if unicode.IsUpper(r) {
					caps++
				}
			}
		}
		if letters >= 3 && letters == caps {
			return true
		}
	}
	return false
}
