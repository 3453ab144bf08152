package fingerprint

import (
	"sort"
	"strings"
)

// containsAny reports whether text contains any of the markers,
// case-insensitively.
func containsAny(text string, markers []string) bool {
	lower := strings.ToLower(text)
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// countMarkerHits counts how many markers occur at least once in text.
func countMarkerHits(text string, markers []string) int {
	lower := strings.ToLower(text)
	n := 0
	for _, m := range markers {
		if strings.Contains(lower, m) {
			n++
		}
	}
	return n
}

// topWordCounts returns up to n entries with count >= minCount, most
// frequent first. Ties sort alphabetically so output is deterministic.
func topWordCounts(freq map[string]int, n, minCount int) []WordCount {
	out := make([]WordCount, 0, len(freq))
	for w, c := range freq {
		if c >= minCount {
			out = append(out, WordCount{Word: w, Count: c})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// topPhraseCounts is topWordCounts for phrases, with the share of samples
// attached.
func topPhraseCounts(freq map[string]int, totalSamples, n, minCount int) []PhraseCount {
	out := make([]PhraseCount, 0, len(freq))
	for p, c := range freq {
		if c >= minCount {
			out = append(out, PhraseCount{Phrase: p, Count: c, Percent: pct(c, totalSamples)})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Phrase < out[j].Phrase
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
