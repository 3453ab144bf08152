package fingerprint

import (
	"strings"

	"github.com/typetone/typetone/internal/stylelang"
	"github.com/typetone/typetone/internal/textkit"
)

func languageMix(texts []string, morph stylelang.Morphology) *LanguageMix {
	m := &LanguageMix{}

	loanFreq := map[string]int{}
	var native, foreign int

	for _, t := range texts {
		for _, w := range textkit.Words(t) {
			switch morph.ClassifyWord(w) {
			case stylelang.ClassNative:
				native++
			case stylelang.ClassForeign:
				foreign++
				loanFreq[strings.ToLower(w)]++
			}
		}
	}

	classified := native + foreign
	if classified > 0 {
		m.ForeignWordPct = float64(foreign) / float64(classified) * 100
		m.NativeWordPct = float64(native) / float64(classified) * 100
	} else {
		m.NativeWordPct = 100
	}
	m.TopLoanwords = topWordCounts(loanFreq, 7, 1)
	m.Style = mixStyleFor(m.ForeignWordPct)
	return m
}

func mixStyleFor(foreignPct float64) MixStyle {
	switch {
	case foreignPct < 3:
		return MixPureNative
	case foreignPct < 12:
		return MixMostlyNative
	case foreignPct < 35:
		return MixMixed
	default:
		return MixMostlyForeign
	}
}
