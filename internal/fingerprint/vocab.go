package fingerprint

import (
	"strings"

	"github.com/typetone/typetone/internal/textkit"
)

const (
	signatureWordMinFreq = 3
	signatureWordLimit   = 10

	// A 3-word opening/closing or 2-word phrase counts as a signature when
	// it shows up in at least this share of samples.
	signaturePhrasePct = 5.0
)

func vocabularyRichness(texts []string) *VocabularyRichness {
	v := &VocabularyRichness{}

	freq := map[string]int{}
	types := map[string]bool{}
	totalTokens := 0
	totalRunes := 0

	for _, t := range texts {
		for _, w := range textkit.Words(t) {
			lw := strings.ToLower(w)
			totalTokens++
			totalRunes += len([]rune(w))
			types[lw] = true
			if !stopwords[lw] && len([]rune(lw)) >= 2 {
				freq[lw]++
			}
		}
	}

	if totalTokens > 0 {
		v.TypeTokenRatio = float64(len(types)) / float64(totalTokens)
		v.AvgWordLength = float64(totalRunes) / float64(totalTokens)
	}
	v.SignatureWords = topWordCounts(freq, signatureWordLimit, signatureWordMinFreq)
	return v
}

func repetitionPatterns(texts []string) *RepetitionPatterns {
	r := &RepetitionPatterns{}
	n := len(texts)

	openings := map[string]int{}
	closings := map[string]int{}
	bigrams := map[string]int{}
	fillers := map[string]int{}

	for _, t := range texts {
		words := textkit.Words(t)
		if len(words) >= 3 {
			openings[normalizePhrase(words[:3])]++
			closings[normalizePhrase(words[len(words)-3:])]++
		}
		for i := 0; i+1 < len(words); i++ {
			a, b := strings.ToLower(words[i]), strings.ToLower(words[i+1])
			if stopwords[a] && stopwords[b] {
				continue
			}
			bigrams[a+" "+b]++
		}
		for _, w := range words {
			lw := strings.ToLower(w)
			if fillerWords[lw] {
				fillers[lw]++
			}
		}
	}

	minHits := phraseThreshold(n)
	r.SignatureOpenings = topPhraseCounts(openings, n, 5, minHits)
	r.SignatureClosings = topPhraseCounts(closings, n, 5, minHits)
	r.Catchphrases = topPhraseCounts(bigrams, n, 5, minHits)
	r.FillerWords = topWordCounts(fillers, 5, 2)
	return r
}

// phraseThreshold converts the signature percentage into an absolute hit
// count, never below 2 so a one-off phrase can't qualify in tiny corpora.
func phraseThreshold(samples int) int {
	min := int(float64(samples) * signaturePhrasePct / 100)
	if min < 2 {
		min = 2
	}
	return min
}

func normalizePhrase(words []string) string {
	lower := make([]string, len(words))
	for i, w := range words {
		lower[i] = strings.ToLower(w)
	}
	return strings.Join(lower, " ")
}
