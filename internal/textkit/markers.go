package textkit

import (
	"regexp"
	"strings"
)

var (
	hashtagPattern  = regexp.MustCompile(`(^|\s)#[^\s#]+`)
	numberedPattern = regexp.MustCompile(`(?m)^\s*\d+[.)]\s`)
	bulletPattern   = regexp.MustCompile(`(?m)^\s*[-•*▪︎‣·]\s`)
	threadPattern   = regexp.MustCompile(`\(?\d+/\d*\)?$|🧵`)
)

// HasHashtag reports whether text contains a #tag.
func HasHashtag(text string) bool {
	return hashtagPattern.MatchString(text)
}

// CountHashtags returns the number of #tags in text.
func CountHashtags(text string) int {
	return len(hashtagPattern.FindAllString(text, -1))
}

// HasBulletMarker reports whether any line starts with a bullet glyph.
func HasBulletMarker(text string) bool {
	return bulletPattern.MatchString(text)
}

// HasNumberedMarker reports whether any line starts with "1." style numbering.
func HasNumberedMarker(text string) bool {
	return numberedPattern.MatchString(text)
}

// HasThreadMarker reports whether text ends with a thread counter like
// "1/5" or carries the thread emoji.
func HasThreadMarker(text string) bool {
	return threadPattern.MatchString(strings.TrimSpace(text))
}

// HasArrowGlyph reports whether text uses arrow glyphs common in
// list-style posts.
func HasArrowGlyph(text string) bool {
	return strings.ContainsAny(text, "→⇒➡↳") || strings.Contains(text, "->")
}
