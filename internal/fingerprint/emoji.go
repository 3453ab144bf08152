package fingerprint

import (
	"strings"

	"github.com/typetone/typetone/internal/textkit"
)

func emojiStrategy(texts []string) *EmojiStrategy {
	e := &EmojiStrategy{}
	n := len(texts)

	freq := map[string]int{}
	var withEmoji, totalEmoji int
	var start, inline, end int

	for _, t := range texts {
		emoji := textkit.Emoji(t)
		if len(emoji) == 0 {
			continue
		}
		withEmoji++
		totalEmoji += len(emoji)
		for _, em := range emoji {
			freq[em]++
		}

		trimmed := strings.TrimSpace(t)
		runes := []rune(trimmed)
		offset := textkit.FirstEmojiOffset(trimmed)
		switch {
		case offset <= 2:
			start++
		case offset >= len(runes)-3:
			end++
		default:
			inline++
		}
	}

	e.UsagePct = pct(withEmoji, n)
	if n > 0 {
		e.AvgPerSample = float64(totalEmoji) / float64(n)
	}
	e.StartPct = pct(start, withEmoji)
	e.InlinePct = pct(inline, withEmoji)
	e.EndPct = pct(end, withEmoji)
	e.TopEmoji = topWordCounts(freq, 5, 1)
	e.Style = emojiStyleFor(e.UsagePct, e.AvgPerSample)
	return e
}

func emojiStyleFor(usagePct, avgPerSample float64) EmojiStyle {
	switch {
	case usagePct < 5:
		return EmojiNone
	case usagePct < 30:
		return EmojiLight
	case usagePct < 60 || avgPerSample < 2:
		return EmojiModerate
	default:
		return EmojiHeavy
	}
}
