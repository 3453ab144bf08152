// Package constraints turns a style fingerprint into enforceable generation
// rules. Synthesis is total: every fingerprint, including the degenerate
// one, yields a consistent ConstraintSet.
package constraints

import "github.com/typetone/typetone/internal/fingerprint"

// Policy is the enforcement stance for one rule dimension.
type Policy string

const (
	PolicyBanned    Policy = "banned"
	PolicyWhitelist Policy = "whitelist"
	PolicyAllowed   Policy = "allowed"
	PolicyRequired  Policy = "required"
	PolicyOptional  Policy = "optional"
)

// Violation tags a failed rule. Tags are stable strings so callers can
// branch on them.
type Violation string

const (
	ViolationTooShort          Violation = "too_short"
	ViolationTooLong           Violation = "too_long"
	ViolationHasLink           Violation = "has_link"
	ViolationHasEmoji          Violation = "has_emoji"
	ViolationEmojiOffWhitelist Violation = "emoji_not_whitelisted"
	ViolationHasHashtag        Violation = "has_hashtag"
	ViolationMissingLineBreak  Violation = "missing_line_breaks"
	ViolationHasLineBreak      Violation = "has_line_breaks"
)

// BannedPattern is a lexical/structural prohibition synthesized from a
// near-zero fingerprint feature. Rule is one prompt-injectable line.
type BannedPattern struct {
	Tag  Violation `json:"tag"`
	Rule string    `json:"rule"`
}

// Pattern tags. Each has a matcher in validate.go.
const (
	PatternEllipsis     Violation = "uses_ellipsis"
	PatternExclamation  Violation = "uses_exclamation"
	PatternAllCaps      Violation = "uses_all_caps"
	PatternHedging      Violation = "uses_hedging"
	PatternBulletList   Violation = "uses_bullet_list"
	PatternQuestionOpen Violation = "opens_with_question"
)

// ConstraintSet is the full rule set derived from one fingerprint.
// It is immutable after synthesis; recompute it when the fingerprint
// changes.
type ConstraintSet struct {
	// Lengths are rune counts.
	MinLength     int `json:"min_length"`
	MaxLength     int `json:"max_length"`
	OptimalLength int `json:"optimal_length"`

	EmojiPolicy    Policy   `json:"emoji_policy"`
	EmojiWhitelist []string `json:"emoji_whitelist,omitempty"`

	HashtagPolicy Policy `json:"hashtag_policy"`

	// LinkPolicy is always banned in the body: links belong in a follow-up
	// post, never the main text. Platform rule, not fingerprint-derived.
	LinkPolicy Policy `json:"link_policy"`

	LineBreakPolicy Policy `json:"line_break_policy"`
	TargetLines     int    `json:"target_lines,omitempty"`

	LanguageMixStyle fingerprint.MixStyle `json:"language_mix_style"`
	ForeignWordPct   float64              `json:"foreign_word_pct"`

	BannedPatterns []BannedPattern `json:"banned_patterns,omitempty"`
}
