package examples

import (
	"strings"
	"unicode/utf8"
)

const shortExampleRunes = 100

// diversityFilter trims a ranked pool down to limit entries while keeping
// the mix varied. Short and long samples each take at most about half the
// slots, as do questions and statements, and a candidate whose opening
// three words repeat an already chosen opening is passed over. Any slots
// left after the category pass are backfilled in rank order so the result
// always holds min(limit, len(scored)) entries.
func diversityFilter(scored []ScoredExample, limit int) []ScoredExample {
	if limit <= 0 {
		return nil
	}
	if len(scored) <= limit {
		return scored
	}

	catCap := (limit + 1) / 2
	var short, long, question, statement int
	openings := make(map[string]bool)
	chosen := make([]ScoredExample, 0, limit)
	used := make([]bool, len(scored))

	for i, ex := range scored {
		if len(chosen) == limit {
			break
		}
		isShort := utf8.RuneCountInString(ex.Sample.Content) < shortExampleRunes
		isQuestion := strings.Contains(ex.Sample.Content, "?")

		if isShort && short == catCap {
			continue
		}
		if !isShort && long == catCap {
			continue
		}
		if isQuestion && question == catCap {
			continue
		}
		if !isQuestion && statement == catCap {
			continue
		}
		op := openingKey(ex.Sample.Content)
		if op != "" && len(chosen) >= 3 && openings[op] {
			continue
		}

		if isShort {
			short++
		} else {
			long++
		}
		if isQuestion {
			question++
		} else {
			statement++
		}
		if op != "" {
			openings[op] = true
		}
		chosen = append(chosen, ex)
		used[i] = true
	}

	// Backfill with the best remaining candidates regardless of category.
	for i, ex := range scored {
		if len(chosen) == limit {
			break
		}
		if !used[i] {
			chosen = append(chosen, ex)
		}
	}
	return chosen
}

// openingKey normalizes the first three words of a sample so repeated
// openings can be detected across casing and spacing differences.
func openingKey(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.ToLower(strings.Join(words, " "))
}
