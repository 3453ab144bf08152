package textkit

import (
	"regexp"
	"strings"
)

// urlPattern matches http(s) links and bare www short links.
var urlPattern = regexp.MustCompile(`https?://\S+|www\.\S+`)

// StripURLs removes all links from text. Line breaks are preserved;
// runs of spaces left behind on each line are collapsed.
func StripURLs(text string) string {
	cleaned := urlPattern.ReplaceAllString(text, "")
	lines := strings.Split(cleaned, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// HasURL reports whether text contains at least one link.
func HasURL(text string) bool {
	return urlPattern.MatchString(text)
}
