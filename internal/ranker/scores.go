package ranker

import (
	"math"
	"strings"

	"github.com/typetone/typetone/internal/fingerprint"
	"github.com/typetone/typetone/internal/textkit"
)

// Short texts produce tiny raw Jaccard values, so the similarity is scaled
// before capping at 1.
const jaccardMultiplier = 4.0

// lengthScore is a unimodal Gaussian centered on the optimal length with
// spread 0.4×optimal: exactly 1.0 at the optimum, strictly decreasing with
// distance either way.
func lengthScore(text string, optimal int) float64 {
	runeLen := len([]rune(strings.TrimSpace(text)))
	if runeLen == 0 {
		return 0
	}
	if optimal <= 0 {
		return 0.5
	}
	if runeLen == optimal {
		return 1.0
	}
	sigma := 0.4 * float64(optimal)
	d := float64(runeLen-optimal) / sigma
	return math.Exp(-d * d)
}

// punctuationScore compares the candidate's punctuation habits with the
// fingerprint profile. Each sub-check nudges a 0.5 base up or down; the
// result clamps to [0,1].
func punctuationScore(text string, p *fingerprint.PunctuationProfile) float64 {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	if p == nil {
		return 0.5
	}

	score := 0.5

	commas := float64(strings.Count(trimmed, ","))
	if math.Abs(commas-p.CommasPerSample) <= 1 {
		score += 0.15
	} else {
		score -= 0.10
	}

	hasEllipsis := strings.Contains(trimmed, "...") || strings.Contains(trimmed, "…")
	if hasEllipsis == (p.EllipsesPerSample >= 0.3) {
		score += 0.10
	} else {
		score -= 0.10
	}

	excls := float64(strings.Count(trimmed, "!"))
	if math.Abs(excls-p.ExclamationsPerSample) <= 1 {
		score += 0.15
	} else {
		score -= 0.15
	}

	runes := []rune(trimmed)
	endsBare := !strings.ContainsRune(".!?…", runes[len(runes)-1])
	profileBare := p.NoTerminalPct >= 50
	if endsBare == profileBare {
		score += 0.10
	} else {
		score -= 0.05
	}

	return clamp01(score)
}

// vocabularyScore is the scaled Jaccard similarity between the candidate's
// word set and the reference word set (example-pool union, or the
// fingerprint's signature words when no pool is supplied).
func vocabularyScore(text string, reference map[string]bool) float64 {
	words := textkit.Words(strings.ToLower(text))
	if len(words) == 0 || len(reference) == 0 {
		return 0
	}

	candidate := make(map[string]bool, len(words))
	for _, w := range words {
		candidate[w] = true
	}

	intersection := 0
	for w := range candidate {
		if reference[w] {
			intersection++
		}
	}
	union := len(candidate) + len(reference) - intersection
	if union == 0 {
		return 0
	}

	return clamp01(float64(intersection) / float64(union) * jaccardMultiplier)
}

// referenceWords builds the vocabulary reference set.
func referenceWords(exampleTexts []string, fp *fingerprint.Fingerprint) map[string]bool {
	ref := map[string]bool{}
	for _, t := range exampleTexts {
		for _, w := range textkit.Words(strings.ToLower(t)) {
			ref[w] = true
		}
	}
	if len(ref) == 0 && fp != nil && fp.Vocabulary != nil {
		for _, wc := range fp.Vocabulary.SignatureWords {
			ref[wc.Word] = true
		}
	}
	return ref
}

var hookTriggers = []string{
	"비밀", "방법", "이유", "충격", "반전", "꿀팁", "정리", "레전드",
	"secret", "how to", "why", "nobody", "stop", "mistake", "truth", "lesson",
}

var hookContrasts = []string{
	"하지만", "사실", "근데", "의외로",
	"but", "actually", "everyone", "most people", "wrong",
}

// hookScore evaluates only the first line.
func hookScore(text string) float64 {
	first := textkit.FirstLine(text)
	if first == "" {
		return 0
	}
	lower := strings.ToLower(first)
	words := textkit.Words(first)

	score := 0.2

	if len(words) > 0 && len(words) <= 6 {
		score += 0.2
	}
	if len(first) > 0 && first[0] >= '0' && first[0] <= '9' {
		score += 0.2
	}
	if strings.Contains(first, "?") && len([]rune(first)) <= 80 {
		score += 0.2
	}
	if containsAny(lower, hookTriggers) {
		score += 0.2
	}
	if containsAny(lower, hookContrasts) {
		score += 0.15
	}

	return clamp01(score)
}

var replyBait = []string{
	"어떻게 생각", "여러분은", "동의", "의견", "반박",
	"what do you think", "agree", "am i wrong", "change my mind", "thoughts",
}

var opinionTells = []string{
	"개인적으로", "솔직히", "내 생각", "제 생각",
	"honestly", "personally", "my take", "unpopular opinion", "hot take",
}

var commentCalls = []string{
	"댓글", "남겨주세요", "알려주세요",
	"comment", "reply", "let me know", "tell me",
}

// replyTriggerScore estimates how strongly the text invites replies.
func replyTriggerScore(text string) float64 {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)

	score := 0.1

	if strings.HasSuffix(trimmed, "?") {
		score += 0.3
	}
	if containsAny(lower, replyBait) {
		score += 0.25
	}
	if containsAny(lower, opinionTells) {
		score += 0.2
	}
	if containsAny(lower, commentCalls) {
		score += 0.2
	}
	if strings.HasSuffix(trimmed, "...") || strings.HasSuffix(trimmed, "…") {
		score += 0.15
	}

	return clamp01(score)
}

func containsAny(lower string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
