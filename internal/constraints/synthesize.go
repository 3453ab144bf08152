package constraints

import (
	"fmt"

	"github.com/typetone/typetone/internal/fingerprint"
)

// Platform and derivation constants. Thresholds are tunable; the shape of
// each policy is not.
const (
	PlatformHardCap = 280 // runes

	defaultMinLength     = 20
	defaultOptimalLength = 100

	minLengthFactor = 0.4
	maxLengthFactor = 1.8

	emojiBannedBelowPct  = 5.0
	emojiOpenSetAbovePct = 60.0
	emojiWhitelistLimit  = 10

	hashtagBannedBelowPct = 10.0

	lineBreakRequiredAbovePct = 60.0
	lineBreakBannedBelowPct   = 15.0

	// A feature below these floors is "never used" and becomes a banned
	// pattern.
	nearZeroPerSample = 0.05
	nearZeroPct       = 3.0
)

// Synthesize derives the generation rules for fp. The result always
// satisfies MinLength <= OptimalLength <= MaxLength.
func Synthesize(fp *fingerprint.Fingerprint) *ConstraintSet {
	cs := &ConstraintSet{
		MinLength:        defaultMinLength,
		MaxLength:        PlatformHardCap,
		OptimalLength:    defaultOptimalLength,
		EmojiPolicy:      PolicyAllowed,
		HashtagPolicy:    PolicyAllowed,
		LinkPolicy:       PolicyBanned,
		LineBreakPolicy:  PolicyOptional,
		LanguageMixStyle: fingerprint.MixMostlyNative,
	}
	if fp == nil || fp.InsufficientData {
		clampLengths(cs)
		return cs
	}

	avg := fp.AvgSampleLength
	optimal := avg
	if fp.WeightedSampleLength > 0 {
		optimal = fp.WeightedSampleLength
	}
	cs.MinLength = int(maxf(minLengthFactor*avg, defaultMinLength))
	cs.MaxLength = int(minf(maxLengthFactor*avg, PlatformHardCap))
	cs.OptimalLength = int(optimal)

	if fp.Emoji != nil {
		switch {
		case fp.Emoji.UsagePct < emojiBannedBelowPct:
			cs.EmojiPolicy = PolicyBanned
		case fp.Emoji.UsagePct >= emojiOpenSetAbovePct && len(fp.Emoji.TopEmoji) >= emojiWhitelistLimit/2:
			cs.EmojiPolicy = PolicyAllowed
		default:
			cs.EmojiPolicy = PolicyWhitelist
			for i, e := range fp.Emoji.TopEmoji {
				if i >= emojiWhitelistLimit {
					break
				}
				cs.EmojiWhitelist = append(cs.EmojiWhitelist, e.Word)
			}
		}
	}

	if fp.Formatting != nil && fp.Formatting.HashtagPct < hashtagBannedBelowPct {
		cs.HashtagPolicy = PolicyBanned
	}

	if fp.LineStructure != nil {
		switch {
		case fp.LineStructure.MultiLinePct >= lineBreakRequiredAbovePct:
			cs.LineBreakPolicy = PolicyRequired
			cs.TargetLines = int(fp.LineStructure.AvgLinesPerSample + 0.5)
			if cs.TargetLines < 2 {
				cs.TargetLines = 2
			}
		case fp.LineStructure.MultiLinePct < lineBreakBannedBelowPct:
			cs.LineBreakPolicy = PolicyBanned
		}
	}

	if fp.LanguageMix != nil {
		cs.LanguageMixStyle = fp.LanguageMix.Style
		cs.ForeignWordPct = fp.LanguageMix.ForeignWordPct
	}

	cs.BannedPatterns = bannedPatterns(fp, cs)
	clampLengths(cs)
	return cs
}

// bannedPatterns turns near-zero features into explicit prohibitions.
func bannedPatterns(fp *fingerprint.Fingerprint, cs *ConstraintSet) []BannedPattern {
	var out []BannedPattern

	if p := fp.Punctuation; p != nil {
		if p.EllipsesPerSample < nearZeroPerSample {
			out = append(out, BannedPattern{PatternEllipsis, "Never use ellipsis (... or …)."})
		}
		if p.ExclamationsPerSample < nearZeroPerSample {
			out = append(out, BannedPattern{PatternExclamation, "Never use exclamation marks."})
		}
	}
	if c := fp.Capitalization; c != nil && c.AllCapsEmphasisPct < nearZeroPct {
		out = append(out, BannedPattern{PatternAllCaps, "Never use ALL-CAPS words for emphasis."})
	}
	if r := fp.Reader; r != nil && r.AuthorityBalance > 0.5 {
		out = append(out, BannedPattern{PatternHedging, "Never hedge with \"I think\" or \"maybe\"; state things plainly."})
	}
	if f := fp.Formatting; f != nil && f.BulletPct < nearZeroPct && f.NumberedPct < nearZeroPct {
		out = append(out, BannedPattern{PatternBulletList, "Never format the text as a bullet or numbered list."})
	}
	if o := fp.Openings; o != nil && o.QuestionPct < nearZeroPct {
		out = append(out, BannedPattern{PatternQuestionOpen, "Never open with a question."})
	}
	return out
}

// clampLengths enforces min <= optimal <= max so the set is satisfiable.
func clampLengths(cs *ConstraintSet) {
	if cs.MaxLength > PlatformHardCap || cs.MaxLength <= 0 {
		cs.MaxLength = PlatformHardCap
	}
	if cs.MinLength < 0 {
		cs.MinLength = 0
	}
	if cs.MinLength > cs.MaxLength {
		cs.MinLength = cs.MaxLength
	}
	if cs.OptimalLength < cs.MinLength {
		cs.OptimalLength = cs.MinLength
	}
	if cs.OptimalLength > cs.MaxLength {
		cs.OptimalLength = cs.MaxLength
	}
	if cs.OptimalLength == 0 {
		cs.OptimalLength = defaultOptimalLength
		if cs.OptimalLength > cs.MaxLength {
			cs.OptimalLength = cs.MaxLength
		}
	}
}

// CapLengths lowers the length ceiling to limit and re-clamps the set.
// Values at or above the platform cap are a no-op.
func (cs *ConstraintSet) CapLengths(limit int) {
	if limit <= 0 || limit >= cs.MaxLength {
		return
	}
	cs.MaxLength = limit
	clampLengths(cs)
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Describe summarizes the set for logs.
func (cs *ConstraintSet) Describe() string {
	return fmt.Sprintf("len[%d..%d] opt=%d emoji=%s hashtag=%s linebreak=%s banned=%d",
		cs.MinLength, cs.MaxLength, cs.OptimalLength,
		cs.EmojiPolicy, cs.HashtagPolicy, cs.LineBreakPolicy, len(cs.BannedPatterns))
}
