package fingerprint

import (
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/typetone/typetone/internal/stylelang"
	"github.com/typetone/typetone/internal/textkit"
)

const (
	shortSentenceWords = 5
	longSentenceWords  = 15

	// Below this many conjunctions per 100 words the author is writing in
	// short disconnected bursts rather than flowing clauses.
	disconnectedThreshold = 1.0
)

func sentenceArchitecture(texts []string, morph stylelang.Morphology) *SentenceArchitecture {
	a := &SentenceArchitecture{}

	var wordCounts []float64
	var short, long, inverted, total int
	var sentencesPerSample []float64

	for _, t := range texts {
		sents := textkit.Sentences(t)
		sentencesPerSample = append(sentencesPerSample, float64(len(sents)))
		for _, s := range sents {
			words := textkit.Words(s)
			if len(words) == 0 {
				continue
			}
			total++
			wordCounts = append(wordCounts, float64(len(words)))
			if len(words) <= shortSentenceWords {
				short++
			}
			if len(words) >= longSentenceWords {
				long++
			}
			if !morph.IsVerbLike(words[len(words)-1]) {
				inverted++
			}
		}
	}

	if len(wordCounts) > 0 {
		a.AvgWordsPerSentence, _ = stats.Mean(wordCounts)
	}
	a.ShortSentencePct = pct(short, total)
	a.LongSentencePct = pct(long, total)
	a.InvertedPct = pct(inverted, total)
	if len(sentencesPerSample) > 0 {
		a.SentencesPerSample, _ = stats.Mean(sentencesPerSample)
	}
	return a
}

func conjunctionProfile(texts []string) *ConjunctionProfile {
	c := &ConjunctionProfile{}

	freq := map[string]int{}
	totalWords := 0
	totalConj := 0

	for _, t := range texts {
		for _, w := range textkit.Words(t) {
			totalWords++
			lw := strings.ToLower(w)
			if conjunctions[lw] {
				totalConj++
				freq[lw]++
			}
		}
	}

	if totalWords > 0 {
		c.PerHundredWords = float64(totalConj) / float64(totalWords) * 100
	}
	c.TopConjunctions = topWordCounts(freq, 5, 1)
	c.PrefersDisconnected = c.PerHundredWords < disconnectedThreshold
	return c
}
