package fingerprint

import (
	"strings"

	"github.com/typetone/typetone/internal/textkit"
)

// Weighted signal contributions to the 0-100 intensity score.
const (
	exclamationWeight = 8.0
	allCapsWeight     = 6.0
	emojiWeight       = 5.0
	lexiconWeight     = 10.0
)

func emotionalIntensity(texts []string) *EmotionalIntensity {
	e := &EmotionalIntensity{}
	n := len(texts)
	if n == 0 {
		e.Level = EmotionCold
		return e
	}

	emotionHits := map[string]int{}
	var totalScore float64

	for _, t := range texts {
		lower := strings.ToLower(t)
		score := 0.0
		score += float64(strings.Count(t, "!")) * exclamationWeight
		if hasAllCapsWord(t) {
			score += allCapsWeight
		}
		score += float64(textkit.CountEmoji(t)) * emojiWeight

		for emotion, markers := range emotionMarkers {
			hits := countMarkerHits(lower, markers)
			if hits > 0 {
				emotionHits[emotion] += hits
				score += float64(hits) * lexiconWeight
			}
		}

		if score > 100 {
			score = 100
		}
		totalScore += score
	}

	e.Score = totalScore / float64(n)
	e.DominantEmotion = dominantEmotion(emotionHits)
	e.Level = emotionLevelFor(e.Score)
	return e
}

func dominantEmotion(hits map[string]int) string {
	best := "neutral"
	bestCount := 0
	for emotion, c := range hits {
		if c > bestCount || (c == bestCount && c > 0 && emotion < best) {
			best = emotion
			bestCount = c
		}
	}
	return best
}

func emotionLevelFor(score float64) EmotionLevel {
	switch {
	case score < 10:
		return EmotionCold
	case score < 30:
		return EmotionCalm
	case score < 55:
		return EmotionWarm
	case score < 80:
		return EmotionIntense
	default:
		return EmotionExplosive
	}
}

var (
	secondPersonWords = []string{"너", "너희", "당신", "여러분", "님들", "you", "your", "u "}
	firstPluralWords  = []string{"우리", "저희", "we ", "our ", "us "}
	firstPersonWords  = []string{"나는", "내가", "난 ", "내 ", "저는", "제가", "i ", "my ", "me "}
)

func readerRelationship(texts []string) *ReaderRelationship {
	r := &ReaderRelationship{}
	n := len(texts)

	var second, plural, single int
	var authority, peer int

	for _, t := range texts {
		lower := " " + strings.ToLower(t) + " "
		second += countMarkerHits(lower, secondPersonWords)
		plural += countMarkerHits(lower, firstPluralWords)
		single += countMarkerHits(lower, firstPersonWords)
		authority += countMarkerHits(lower, authorityMarkers)
		peer += countMarkerHits(lower, peerMarkers)
		peer += strings.Count(t, "?")
	}

	fn := float64(n)
	if n > 0 {
		r.SecondPersonPerSample = float64(second) / fn
		r.FirstPluralPerSample = float64(plural) / fn
		r.FirstPersonPerSample = float64(single) / fn
	}
	if authority+peer > 0 {
		r.AuthorityBalance = float64(authority-peer) / float64(authority+peer)
	}
	r.Directness = directnessFor(r.AuthorityBalance, r.SecondPersonPerSample)
	return r
}

func directnessFor(balance, secondPerson float64) string {
	switch {
	case balance > 0.3 && secondPerson > 0.5:
		return "commanding"
	case balance > 0.3:
		return "direct"
	case balance < -0.3:
		return "soft"
	default:
		return "conversational"
	}
}
