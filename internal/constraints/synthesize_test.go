package constraints

import (
	"strings"
	"testing"

	"github.com/typetone/typetone/internal/fingerprint"
)

func quietFingerprint() *fingerprint.Fingerprint {
	return &fingerprint.Fingerprint{
		SourceID:        "quiet-writer",
		SampleCount:     50,
		AvgSampleLength: 80,
		Punctuation: &fingerprint.PunctuationProfile{
			EllipsesPerSample:     0,
			ExclamationsPerSample: 0.8,
		},
		Capitalization: &fingerprint.CapitalizationProfile{AllCapsEmphasisPct: 0},
		Emoji:          &fingerprint.EmojiStrategy{UsagePct: 2},
		Formatting: &fingerprint.FormatPreferences{
			HashtagPct: 3,
			BulletPct:  0,
		},
		LineStructure: &fingerprint.LineStructure{MultiLinePct: 5},
		LanguageMix: &fingerprint.LanguageMix{
			Style:          fingerprint.MixMostlyNative,
			ForeignWordPct: 12,
		},
		Openings: &fingerprint.OpeningPsychology{QuestionPct: 1},
		Reader:   &fingerprint.ReaderRelationship{AuthorityBalance: 0.7},
	}
}

func TestSynthesizeLengths(t *testing.T) {
	cs := Synthesize(quietFingerprint())

	if cs.MinLength != 32 {
		t.Errorf("MinLength = %d, want 32 (0.4 of avg 80)", cs.MinLength)
	}
	if cs.MaxLength != 144 {
		t.Errorf("MaxLength = %d, want 144 (1.8 of avg 80)", cs.MaxLength)
	}
	if cs.OptimalLength != 80 {
		t.Errorf("OptimalLength = %d, want 80", cs.OptimalLength)
	}
}

func TestSynthesizePrefersWeightedLength(t *testing.T) {
	fp := quietFingerprint()
	fp.WeightedSampleLength = 95

	cs := Synthesize(fp)
	if cs.OptimalLength != 95 {
		t.Errorf("OptimalLength = %d, want weighted 95 over avg 80", cs.OptimalLength)
	}
}

func TestSynthesizePolicies(t *testing.T) {
	cs := Synthesize(quietFingerprint())

	if cs.EmojiPolicy != PolicyBanned {
		t.Errorf("EmojiPolicy = %s, want banned at 2%% usage", cs.EmojiPolicy)
	}
	if cs.HashtagPolicy != PolicyBanned {
		t.Errorf("HashtagPolicy = %s, want banned at 3%% usage", cs.HashtagPolicy)
	}
	if cs.LineBreakPolicy != PolicyBanned {
		t.Errorf("LineBreakPolicy = %s, want banned at 5%% multi-line", cs.LineBreakPolicy)
	}
	if cs.LinkPolicy != PolicyBanned {
		t.Errorf("LinkPolicy = %s, want banned always", cs.LinkPolicy)
	}
	if cs.LanguageMixStyle != fingerprint.MixMostlyNative {
		t.Errorf("LanguageMixStyle = %s, want mostly-native", cs.LanguageMixStyle)
	}
	if cs.ForeignWordPct != 12 {
		t.Errorf("ForeignWordPct = %v, want 12", cs.ForeignWordPct)
	}
}

func TestSynthesizeBannedPatterns(t *testing.T) {
	cs := Synthesize(quietFingerprint())

	got := make(map[Violation]bool, len(cs.BannedPatterns))
	for _, p := range cs.BannedPatterns {
		if p.Rule == "" {
			t.Errorf("pattern %s has empty rule text", p.Tag)
		}
		got[p.Tag] = true
	}

	want := []Violation{
		PatternEllipsis, PatternAllCaps, PatternHedging,
		PatternBulletList, PatternQuestionOpen,
	}
	for _, tag := range want {
		if !got[tag] {
			t.Errorf("missing banned pattern %s", tag)
		}
	}
	if got[PatternExclamation] {
		t.Error("exclamations at 0.8 per sample should not be banned")
	}
}

func TestSynthesizeEmojiWhitelist(t *testing.T) {
	top := make([]fingerprint.WordCount, 12)
	for i := range top {
		top[i] = fingerprint.WordCount{Word: string(rune('🌀' + i)), Count: 12 - i}
	}
	fp := quietFingerprint()
	fp.Emoji = &fingerprint.EmojiStrategy{UsagePct: 30, TopEmoji: top}

	cs := Synthesize(fp)
	if cs.EmojiPolicy != PolicyWhitelist {
		t.Fatalf("EmojiPolicy = %s, want whitelist at 30%% usage", cs.EmojiPolicy)
	}
	if len(cs.EmojiWhitelist) != 10 {
		t.Errorf("whitelist has %d entries, want cap of 10", len(cs.EmojiWhitelist))
	}
	if cs.EmojiWhitelist[0] != top[0].Word {
		t.Errorf("whitelist[0] = %q, want most frequent %q", cs.EmojiWhitelist[0], top[0].Word)
	}
}

func TestSynthesizeEmojiOpenSet(t *testing.T) {
	fp := quietFingerprint()
	fp.Emoji = &fingerprint.EmojiStrategy{
		UsagePct: 70,
		TopEmoji: []fingerprint.WordCount{
			{Word: "🔥"}, {Word: "😀"}, {Word: "✨"}, {Word: "💡"}, {Word: "🙏"},
		},
	}

	cs := Synthesize(fp)
	if cs.EmojiPolicy != PolicyAllowed {
		t.Errorf("EmojiPolicy = %s, want allowed for a heavy varied user", cs.EmojiPolicy)
	}
}

func TestSynthesizeLineBreaks(t *testing.T) {
	tests := []struct {
		name       string
		multiLine  float64
		avgLines   float64
		wantPolicy Policy
		wantLines  int
	}{
		{"required with rounded target", 70, 3.4, PolicyRequired, 3},
		{"required floors target at two", 65, 1.2, PolicyRequired, 2},
		{"optional in the middle", 40, 2, PolicyOptional, 0},
		{"banned when rare", 10, 1.1, PolicyBanned, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := quietFingerprint()
			fp.LineStructure = &fingerprint.LineStructure{
				MultiLinePct:      tt.multiLine,
				AvgLinesPerSample: tt.avgLines,
			}

			cs := Synthesize(fp)
			if cs.LineBreakPolicy != tt.wantPolicy {
				t.Errorf("LineBreakPolicy = %s, want %s", cs.LineBreakPolicy, tt.wantPolicy)
			}
			if cs.TargetLines != tt.wantLines {
				t.Errorf("TargetLines = %d, want %d", cs.TargetLines, tt.wantLines)
			}
		})
	}
}

func TestSynthesizeDegenerate(t *testing.T) {
	for _, fp := range []*fingerprint.Fingerprint{nil, {InsufficientData: true}} {
		cs := Synthesize(fp)
		if cs.MinLength != 20 || cs.MaxLength != PlatformHardCap || cs.OptimalLength != 100 {
			t.Errorf("lengths = [%d..%d] opt=%d, want defaults [20..280] opt=100",
				cs.MinLength, cs.MaxLength, cs.OptimalLength)
		}
		if cs.EmojiPolicy != PolicyAllowed || cs.HashtagPolicy != PolicyAllowed {
			t.Error("degenerate fingerprint should not ban emoji or hashtags")
		}
		if cs.LinkPolicy != PolicyBanned {
			t.Error("links stay banned even without a fingerprint")
		}
	}
}

func TestSynthesizeClampsShortCorpus(t *testing.T) {
	fp := quietFingerprint()
	fp.AvgSampleLength = 10
	fp.WeightedSampleLength = 5

	cs := Synthesize(fp)
	if cs.MinLength > cs.MaxLength {
		t.Fatalf("min %d > max %d", cs.MinLength, cs.MaxLength)
	}
	if cs.MaxLength != 18 {
		t.Errorf("MaxLength = %d, want 18 (1.8 of avg 10)", cs.MaxLength)
	}
	if cs.MinLength != 18 {
		t.Errorf("MinLength = %d, want clamped to max", cs.MinLength)
	}
	if cs.OptimalLength < cs.MinLength || cs.OptimalLength > cs.MaxLength {
		t.Errorf("OptimalLength %d outside [%d..%d]", cs.OptimalLength, cs.MinLength, cs.MaxLength)
	}
}

func TestSynthesizeNeverExceedsHardCap(t *testing.T) {
	fp := quietFingerprint()
	fp.AvgSampleLength = 250
	fp.WeightedSampleLength = 400

	cs := Synthesize(fp)
	if cs.MaxLength != PlatformHardCap {
		t.Errorf("MaxLength = %d, want platform cap %d", cs.MaxLength, PlatformHardCap)
	}
	if cs.OptimalLength > PlatformHardCap {
		t.Errorf("OptimalLength = %d exceeds platform cap", cs.OptimalLength)
	}
}

func TestCapLengths(t *testing.T) {
	cs := Synthesize(quietFingerprint())

	cs.CapLengths(300)
	if cs.MaxLength != 144 {
		t.Errorf("MaxLength = %d, want 144 unchanged by a higher cap", cs.MaxLength)
	}

	cs.CapLengths(60)
	if cs.MaxLength != 60 {
		t.Errorf("MaxLength = %d, want lowered to 60", cs.MaxLength)
	}
	if cs.OptimalLength != 60 {
		t.Errorf("OptimalLength = %d, want re-clamped to the new ceiling", cs.OptimalLength)
	}
	if cs.MinLength > cs.MaxLength {
		t.Errorf("min %d exceeds max %d after capping", cs.MinLength, cs.MaxLength)
	}

	cs.CapLengths(0)
	if cs.MaxLength != 60 {
		t.Errorf("MaxLength = %d, want 60 unchanged by a zero cap", cs.MaxLength)
	}
}

func TestDescribe(t *testing.T) {
	cs := Synthesize(quietFingerprint())
	desc := cs.Describe()
	for _, want := range []string{"len[32..144]", "opt=80", "emoji=banned"} {
		if !strings.Contains(desc, want) {
			t.Errorf("Describe() = %q, missing %q", desc, want)
		}
	}
}
