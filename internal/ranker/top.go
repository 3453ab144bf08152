package ranker

// Top returns up to n ranked candidates whose constraint sub-score is at
// least minConstraint. When the threshold excludes everything, it falls
// back to the best n overall and reports that with the second return
// value; the caller is never handed an empty selection while candidates
// exist.
func Top(ranked []RankedCandidate, n int, minConstraint float64) ([]RankedCandidate, bool) {
	if len(ranked) == 0 || n <= 0 {
		return nil, false
	}

	selected := make([]RankedCandidate, 0, n)
	for _, rc := range ranked {
		if rc.Scores.Constraint >= minConstraint {
			selected = append(selected, rc)
			if len(selected) == n {
				return selected, false
			}
		}
	}
	if len(selected) > 0 {
		return selected, false
	}

	// Nothing passed the bar: hand back the best overall instead.
	if n > len(ranked) {
		n = len(ranked)
	}
	fallback := make([]RankedCandidate, n)
	copy(fallback, ranked[:n])
	return fallback, true
}
