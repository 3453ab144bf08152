package textkit

import (
	"regexp"
	"strings"
	"unicode"
)

// sentenceEnd splits on terminal punctuation runs. Korean sentence enders
// (다/요/죠 + punctuation) still terminate with ./!/? or a newline in
// practice, so a punctuation-based split holds for both scripts.
var sentenceEnd = regexp.MustCompile(`[.!?…]+[\s$]|[.!?…]+$|\n+`)

// Sentences splits text into trimmed, non-empty sentence strings.
func Sentences(text string) []string {
	parts := sentenceEnd.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Words splits text on whitespace and trims surrounding punctuation from
// each token. Empty tokens are dropped.
func Words(text string) []string {
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// Lines splits text into trimmed, non-empty lines.
func Lines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// FirstLine returns the first non-empty line of text, or "".
func FirstLine(text string) string {
	lines := Lines(text)
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}

// FirstSentence returns the first sentence of text, or "".
func FirstSentence(text string) string {
	s := Sentences(text)
	if len(s) == 0 {
		return ""
	}
	return s[0]
}
