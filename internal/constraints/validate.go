package constraints

import (
	"fmt"
	"strings"

	"github.com/typetone/typetone/internal/textkit"
)

// Validate checks text against every rule. It is pure and total: empty or
// malformed input simply fails the length rules. Violations come back in
// rule order and contain no duplicates.
func (cs *ConstraintSet) Validate(text string) (bool, []Violation) {
	var violations []Violation

	runeLen := len([]rune(strings.TrimSpace(text)))
	if runeLen < cs.MinLength {
		violations = append(violations, ViolationTooShort)
	}
	if runeLen > cs.MaxLength {
		violations = append(violations, ViolationTooLong)
	}

	if cs.LinkPolicy == PolicyBanned && textkit.HasURL(text) {
		violations = append(violations, ViolationHasLink)
	}

	switch cs.EmojiPolicy {
	case PolicyBanned:
		if textkit.HasEmoji(text) {
			violations = append(violations, ViolationHasEmoji)
		}
	case PolicyWhitelist:
		if offWhitelist(text, cs.EmojiWhitelist) {
			violations = append(violations, ViolationEmojiOffWhitelist)
		}
	}

	if cs.HashtagPolicy == PolicyBanned && textkit.HasHashtag(text) {
		violations = append(violations, ViolationHasHashtag)
	}

	multiLine := len(textkit.Lines(text)) > 1
	switch cs.LineBreakPolicy {
	case PolicyRequired:
		if !multiLine {
			violations = append(violations, ViolationMissingLineBreak)
		}
	case PolicyBanned:
		if multiLine {
			violations = append(violations, ViolationHasLineBreak)
		}
	}

	for _, p := range cs.BannedPatterns {
		if matchesPattern(text, p.Tag) {
			violations = append(violations, p.Tag)
		}
	}

	return len(violations) == 0, violations
}

// Score maps the violation count into [0,1]: one fifth of the score per
// violation, floored at zero. Monotonic non-increasing by construction.
func (cs *ConstraintSet) Score(text string) float64 {
	_, violations := cs.Validate(text)
	score := 1.0 - 0.2*float64(len(violations))
	if score < 0 {
		score = 0
	}
	return score
}

// offWhitelist reports whether text uses an emoji outside the whitelist.
func offWhitelist(text string, whitelist []string) bool {
	allowed := make(map[string]bool, len(whitelist))
	for _, e := range whitelist {
		allowed[e] = true
	}
	for _, e := range textkit.Emoji(text) {
		if !allowed[e] {
			return true
		}
	}
	return false
}

// matchesPattern implements the banned-pattern checks.
func matchesPattern(text string, tag Violation) bool {
	switch tag {
	case PatternEllipsis:
		return strings.Contains(text, "...") || strings.Contains(text, "…")
	case PatternExclamation:
		return strings.Contains(text, "!")
	case PatternAllCaps:
		return hasAllCapsWord(text)
	case PatternHedging:
		lower := strings.ToLower(text)
		for _, h := range hedgePhrases {
			if strings.Contains(lower, h) {
				return true
			}
		}
		return false
	case PatternBulletList:
		return textkit.HasBulletMarker(text) || textkit.HasNumberedMarker(text)
	case PatternQuestionOpen:
		first := textkit.FirstLine(text)
		return strings.Contains(first, "?")
	default:
		return false
	}
}

var hedgePhrases = []string{
	"i think", "maybe", "perhaps", "i guess", "probably",
	"같아요", "아닐까", "아마", "듯",
}

func hasAllCapsWord(text string) bool {
	for _, f := range strings.Fields(text) {
		letters, caps := 0, 0
		for _, r := range f {
			if r >= 'A' && r <= 'Z' {
				letters++
				caps++
			} else if r >= 'a' && r <= 'z' {
				letters++
			}
		}
		if letters >= 3 && letters == caps {
			return true
		}
	}
	return false
}

// PromptText renders the rules as an ordered list of short directives for
// the generation model.
func (cs *ConstraintSet) PromptText() string {
	var rules []string

	rules = append(rules, fmt.Sprintf("Write between %d and %d characters; aim for about %d.",
		cs.MinLength, cs.MaxLength, cs.OptimalLength))

	switch cs.EmojiPolicy {
	case PolicyBanned:
		rules = append(rules, "Do not use any emoji.")
	case PolicyWhitelist:
		rules = append(rules, fmt.Sprintf("Only use these emoji, sparingly: %s.",
			strings.Join(cs.EmojiWhitelist, " ")))
	case PolicyAllowed:
		rules = append(rules, "Emoji are allowed where they fit the tone.")
	}

	if cs.HashtagPolicy == PolicyBanned {
		rules = append(rules, "Do not use hashtags.")
	}

	rules = append(rules, "Never put links in the text body.")

	switch cs.LineBreakPolicy {
	case PolicyRequired:
		rules = append(rules, fmt.Sprintf("Break the text into about %d lines.", cs.TargetLines))
	case PolicyBanned:
		rules = append(rules, "Write as a single block with no line breaks.")
	}

	if cs.LanguageMixStyle != "" {
		rules = append(rules, fmt.Sprintf("Keep the vocabulary %s (about %.0f%% loanwords).",
			cs.LanguageMixStyle, cs.ForeignWordPct))
	}

	for _, p := range cs.BannedPatterns {
		rules = append(rules, p.Rule)
	}

	var b strings.Builder
	for i, r := range rules {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}
	return strings.TrimRight(b.String(), "\n")
}
