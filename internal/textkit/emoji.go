package textkit

import "strings"

// emojiRanges covers the Unicode blocks that matter for short social text:
// emoticons, pictographs, transport symbols, supplemental symbols, and the
// misc symbols / dingbats blocks.
var emojiRanges = [][2]rune{
	{0x1F300, 0x1F5FF}, // misc symbols and pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport and map
	{0x1F900, 0x1F9FF}, // supplemental symbols
	{0x1FA70, 0x1FAFF}, // extended-A
	{0x2600, 0x26FF},   // misc symbols
	{0x2700, 0x27BF},   // dingbats
	{0x2B00, 0x2BFF},   // arrows and stars (⭐ etc.)
	{0x1F1E6, 0x1F1FF}, // regional indicators
}

// IsEmoji reports whether r falls inside a known emoji block.
func IsEmoji(r rune) bool {
	for _, rg := range emojiRanges {
		if r >= rg[0] && r <= rg[1] {
			return true
		}
	}
	return false
}

// CountEmoji returns the number of emoji runes in text.
func CountEmoji(text string) int {
	n := 0
	for _, r := range text {
		if IsEmoji(r) {
			n++
		}
	}
	return n
}

// HasEmoji reports whether text contains at least one emoji rune.
func HasEmoji(text string) bool {
	for _, r := range text {
		if IsEmoji(r) {
			return true
		}
	}
	return false
}

// FirstEmojiOffset returns the rune offset of the first emoji in text,
// or -1 if there is none.
func FirstEmojiOffset(text string) int {
	for i, r := range []rune(text) {
		if IsEmoji(r) {
			return i
		}
	}
	return -1
}

// Emoji returns every emoji rune in text, in order, as strings.
func Emoji(text string) []string {
	var out []string
	for _, r := range text {
		if IsEmoji(r) {
			out = append(out, string(r))
		}
	}
	return out
}

// EndsWithEmoji reports whether the last non-space rune of text is an emoji.
func EndsWithEmoji(text string) bool {
	trimmed := strings.TrimSpace(text)
	runes := []rune(trimmed)
	if len(runes) == 0 {
		return false
	}
	return IsEmoji(runes[len(runes)-1])
}
