// Package fingerprint derives a quantitative style profile from a corpus of
// short text samples. Extraction is a pure function over an immutable
// corpus: a refresh produces a brand-new Fingerprint that replaces the old
// one wholesale, so readers never observe a partial update.
package fingerprint

import (
	"time"

	"github.com/typetone/typetone/internal/corpus"
)

// Fingerprint is the full quantitative style profile of one corpus.
// Feature-group pointers are nil on the degenerate (insufficient data)
// fingerprint and always all non-nil otherwise.
type Fingerprint struct {
	SourceID         string    `json:"source_id"`
	SampleCount      int       `json:"sample_count"`
	InsufficientData bool      `json:"insufficient_data,omitempty"`
	ExtractedAt      time.Time `json:"extracted_at"`

	// AvgSampleLength is the mean rune length of cleaned samples.
	// WeightedSampleLength weights each sample by engagement, so it leans
	// toward the lengths that performed well.
	AvgSampleLength      float64 `json:"avg_sample_length"`
	WeightedSampleLength float64 `json:"weighted_sample_length"`

	Punctuation    *PunctuationProfile    `json:"punctuation,omitempty"`
	Capitalization *CapitalizationProfile `json:"capitalization,omitempty"`
	Sentences      *SentenceArchitecture  `json:"sentences,omitempty"`
	LanguageMix    *LanguageMix           `json:"language_mix,omitempty"`
	Conjunctions   *ConjunctionProfile    `json:"conjunctions,omitempty"`
	LineStructure  *LineStructure         `json:"line_structure,omitempty"`
	Vocabulary     *VocabularyRichness    `json:"vocabulary,omitempty"`
	Emoji          *EmojiStrategy         `json:"emoji,omitempty"`
	Openings       *OpeningPsychology     `json:"openings,omitempty"`
	Closings       *ClosingStrategy       `json:"closings,omitempty"`
	Thought        *ThoughtStructure      `json:"thought,omitempty"`
	Emotion        *EmotionalIntensity    `json:"emotion,omitempty"`
	Reader         *ReaderRelationship    `json:"reader,omitempty"`
	Repetition     *RepetitionPatterns    `json:"repetition,omitempty"`
	Formatting     *FormatPreferences     `json:"formatting,omitempty"`
	Typing         *TypingHabits          `json:"typing,omitempty"`

	// ExampleSamples are the top-engagement originals kept for prompt
	// display. They never feed any score.
	ExampleSamples []corpus.Sample `json:"example_samples,omitempty"`
}

// WordCount pairs a token with its corpus frequency.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// PhraseCount pairs a multi-word phrase with its frequency and the share
// of samples it appears in.
type PhraseCount struct {
	Phrase  string  `json:"phrase"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// PunctuationProfile captures per-sample punctuation density and how
// samples terminate.
type PunctuationProfile struct {
	CommasPerSample       float64 `json:"commas_per_sample"`
	EllipsesPerSample     float64 `json:"ellipses_per_sample"`
	ExclamationsPerSample float64 `json:"exclamations_per_sample"`
	QuestionsPerSample    float64 `json:"questions_per_sample"`
	ColonsPerSample       float64 `json:"colons_per_sample"`
	DashesPerSample       float64 `json:"dashes_per_sample"`

	EndsWithPeriodPct      float64 `json:"ends_with_period_pct"`
	EndsWithExclamationPct float64 `json:"ends_with_exclamation_pct"`
	NoTerminalPct          float64 `json:"no_terminal_pct"`
}

// CapitalizationProfile only carries signal for Latin-script corpora;
// Hangul has no case, so the percentages come out near zero there.
type CapitalizationProfile struct {
	StartsUpperPct     float64 `json:"starts_upper_pct"`
	StartsLowerPct     float64 `json:"starts_lower_pct"`
	AllCapsEmphasisPct float64 `json:"all_caps_emphasis_pct"`
}

// SentenceArchitecture describes sentence length and construction habits.
type SentenceArchitecture struct {
	AvgWordsPerSentence float64 `json:"avg_words_per_sentence"`
	ShortSentencePct    float64 `json:"short_sentence_pct"`
	LongSentencePct     float64 `json:"long_sentence_pct"`
	// InvertedPct is the share of sentences whose final token does not look
	// like a conjugated verb, i.e. the clause order is flipped for effect.
	InvertedPct        float64 `json:"inverted_pct"`
	SentencesPerSample float64 `json:"sentences_per_sample"`
}

// MixStyle buckets the loanword ratio.
type MixStyle string

const (
	MixPureNative    MixStyle = "pure-native"
	MixMostlyNative  MixStyle = "mostly-native"
	MixMixed         MixStyle = "mixed"
	MixMostlyForeign MixStyle = "mostly-foreign"
)

// LanguageMix quantifies loanword usage.
type LanguageMix struct {
	ForeignWordPct float64     `json:"foreign_word_pct"`
	NativeWordPct  float64     `json:"native_word_pct"`
	TopLoanwords   []WordCount `json:"top_loanwords,omitempty"`
	Style          MixStyle    `json:"style"`
}

// ConjunctionProfile measures how explicitly the author connects clauses.
type ConjunctionProfile struct {
	PerHundredWords float64     `json:"per_hundred_words"`
	TopConjunctions []WordCount `json:"top_conjunctions,omitempty"`
	// PrefersDisconnected is set when conjunction density is low enough
	// that the author evidently favors short standalone sentences.
	PrefersDisconnected bool `json:"prefers_disconnected"`
}

// LineStyle buckets multi-line habits.
type LineStyle string

const (
	LineSingleBlock    LineStyle = "single-block"
	LineBreaker        LineStyle = "line-breaker"
	LineHeavyFormatter LineStyle = "heavy-formatter"
)

// LineStructure describes visual layout habits.
type LineStructure struct {
	MultiLinePct      float64   `json:"multi_line_pct"`
	AvgLinesPerSample float64   `json:"avg_lines_per_sample"`
	ListMarkerPct     float64   `json:"list_marker_pct"`
	Style             LineStyle `json:"style"`
}

// VocabularyRichness measures lexical variety.
type VocabularyRichness struct {
	TypeTokenRatio float64     `json:"type_token_ratio"`
	AvgWordLength  float64     `json:"avg_word_length"`
	SignatureWords []WordCount `json:"signature_words,omitempty"`
}

// EmojiStyle buckets emoji usage.
type EmojiStyle string

const (
	EmojiNone     EmojiStyle = "none"
	EmojiLight    EmojiStyle = "light"
	EmojiModerate EmojiStyle = "moderate"
	EmojiHeavy    EmojiStyle = "heavy"
)

// EmojiStrategy describes how and where emoji appear.
type EmojiStrategy struct {
	UsagePct     float64     `json:"usage_pct"`
	AvgPerSample float64     `json:"avg_per_sample"`
	StartPct     float64     `json:"start_pct"`
	InlinePct    float64     `json:"inline_pct"`
	EndPct       float64     `json:"end_pct"`
	TopEmoji     []WordCount `json:"top_emoji,omitempty"`
	Style        EmojiStyle  `json:"style"`
}

// OpeningKind classifies the first sentence of a sample.
type OpeningKind string

const (
	OpenQuestion      OpeningKind = "question"
	OpenStory         OpeningKind = "story-opening"
	OpenData          OpeningKind = "data-opening"
	OpenDirectAddress OpeningKind = "direct-address"
	OpenContrast      OpeningKind = "contrast-opening"
	OpenMystery       OpeningKind = "mystery-opening"
	OpenBoldClaim     OpeningKind = "bold-claim"
	OpenProvocation   OpeningKind = "other-provocation"
)

// OpeningPsychology reports the opening-move distribution.
type OpeningPsychology struct {
	QuestionPct      float64     `json:"question_pct"`
	StoryPct         float64     `json:"story_pct"`
	DataPct          float64     `json:"data_pct"`
	DirectAddressPct float64     `json:"direct_address_pct"`
	ContrastPct      float64     `json:"contrast_pct"`
	MysteryPct       float64     `json:"mystery_pct"`
	BoldClaimPct     float64     `json:"bold_claim_pct"`
	ProvocationPct   float64     `json:"provocation_pct"`
	Dominant         OpeningKind `json:"dominant"`
}

// ClosingKind classifies the final segment of a sample.
type ClosingKind string

const (
	CloseQuestion     ClosingKind = "question-close"
	CloseEllipsis     ClosingKind = "trailing-ellipsis"
	CloseEmoji        ClosingKind = "emoji-close"
	CloseCallToAction ClosingKind = "call-to-action"
	CloseDeclarative  ClosingKind = "declarative-close"
	CloseNone         ClosingKind = "no-close"
)

// ClosingStrategy reports the closing-move distribution.
type ClosingStrategy struct {
	QuestionPct     float64     `json:"question_pct"`
	EllipsisPct     float64     `json:"ellipsis_pct"`
	EmojiPct        float64     `json:"emoji_pct"`
	CallToActionPct float64     `json:"call_to_action_pct"`
	DeclarativePct  float64     `json:"declarative_pct"`
	NoClosePct      float64     `json:"no_close_pct"`
	Dominant        ClosingKind `json:"dominant"`
}

// ThoughtKind classifies how a sample organizes its idea.
type ThoughtKind string

const (
	ThoughtList            ThoughtKind = "list-format"
	ThoughtSingle          ThoughtKind = "single-thought"
	ThoughtContrast        ThoughtKind = "contrast"
	ThoughtBuildUp         ThoughtKind = "build-up"
	ThoughtConclusionFirst ThoughtKind = "conclusion-first"
	ThoughtMulti           ThoughtKind = "multi-thought"
)

// ThoughtStructure reports the organization distribution.
type ThoughtStructure struct {
	ListPct            float64     `json:"list_pct"`
	SinglePct          float64     `json:"single_pct"`
	ContrastPct        float64     `json:"contrast_pct"`
	BuildUpPct         float64     `json:"build_up_pct"`
	ConclusionFirstPct float64     `json:"conclusion_first_pct"`
	MultiPct           float64     `json:"multi_pct"`
	Dominant           ThoughtKind `json:"dominant"`
}

// EmotionLevel buckets the 0-100 intensity score.
type EmotionLevel string

const (
	EmotionCold      EmotionLevel = "cold"
	EmotionCalm      EmotionLevel = "calm"
	EmotionWarm      EmotionLevel = "warm"
	EmotionIntense   EmotionLevel = "intense"
	EmotionExplosive EmotionLevel = "explosive"
)

// EmotionalIntensity scores emotional signal strength.
type EmotionalIntensity struct {
	Score           float64      `json:"score"`
	DominantEmotion string       `json:"dominant_emotion"`
	Level           EmotionLevel `json:"level"`
}

// ReaderRelationship measures how the author addresses the reader.
type ReaderRelationship struct {
	SecondPersonPerSample float64 `json:"second_person_per_sample"`
	FirstPluralPerSample  float64 `json:"first_plural_per_sample"`
	FirstPersonPerSample  float64 `json:"first_person_per_sample"`
	// AuthorityBalance runs from -1 (hedging peer) to +1 (imperative
	// authority); 0 means the two voices are in balance.
	AuthorityBalance float64 `json:"authority_balance"`
	Directness       string  `json:"directness"`
}

// RepetitionPatterns surfaces the author's recurring phrases.
type RepetitionPatterns struct {
	SignatureOpenings []PhraseCount `json:"signature_openings,omitempty"`
	SignatureClosings []PhraseCount `json:"signature_closings,omitempty"`
	FillerWords       []WordCount   `json:"filler_words,omitempty"`
	Catchphrases      []PhraseCount `json:"catchphrases,omitempty"`
}

// FormatPreferences measures structural glyph usage across samples.
type FormatPreferences struct {
	BulletPct       float64 `json:"bullet_pct"`
	NumberedPct     float64 `json:"numbered_pct"`
	ArrowPct        float64 `json:"arrow_pct"`
	ParenthesesPct  float64 `json:"parentheses_pct"`
	QuotePct        float64 `json:"quote_pct"`
	ThreadMarkerPct float64 `json:"thread_marker_pct"`
	HashtagPct      float64 `json:"hashtag_pct"`
}

// TypingStyle buckets overall informality.
type TypingStyle string

const (
	TypingFormal  TypingStyle = "formal"
	TypingCasual  TypingStyle = "casual"
	TypingLazy    TypingStyle = "lazy"
	TypingChaotic TypingStyle = "chaotic"
)

// TypingHabits captures informal-writing signals.
type TypingHabits struct {
	AllLowercasePct         float64     `json:"all_lowercase_pct"`
	LowercaseAfterPeriodPct float64     `json:"lowercase_after_period_pct"`
	NoCommaPct              float64     `json:"no_comma_pct"`
	NoTerminalPct           float64     `json:"no_terminal_pct"`
	Contractions            []string    `json:"contractions,omitempty"`
	MissingApostrophePct    float64     `json:"missing_apostrophe_pct"`
	Style                   TypingStyle `json:"style"`
}
