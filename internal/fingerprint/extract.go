package fingerprint

import (
	"time"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/typetone/typetone/internal/corpus"
	"github.com/typetone/typetone/internal/stylelang"
	"github.com/typetone/typetone/internal/textkit"
)

// minCleanedLength is the shortest post-preprocessing text that still
// carries style signal. Anything at or below it is noise (bare mentions,
// single emoji, leftover fragments).
const minCleanedLength = 10

// exampleSampleLimit caps the retained top-engagement samples.
const exampleSampleLimit = 10

// Extractor turns corpora into fingerprints. It carries no mutable state;
// one Extractor can serve concurrent extractions.
type Extractor struct {
	morph stylelang.Morphology
}

// NewExtractor creates an extractor with the given morphology strategy.
// A nil strategy falls back to the Korean default.
func NewExtractor(morph stylelang.Morphology) *Extractor {
	if morph == nil {
		morph = stylelang.Korean{}
	}
	return &Extractor{morph: morph}
}

// cleaned pairs a surviving sample with its URL-stripped text.
type cleaned struct {
	sample corpus.Sample
	text   string
}

// Extract computes the style fingerprint of c. An empty corpus, or one
// where preprocessing removes everything, yields a degenerate fingerprint
// flagged InsufficientData instead of an error.
func (e *Extractor) Extract(c corpus.Corpus) *Fingerprint {
	cl := preprocess(c.Samples)
	if len(cl) == 0 {
		return &Fingerprint{
			SourceID:         c.SourceID,
			SampleCount:      0,
			InsufficientData: true,
			ExtractedAt:      time.Now().UTC(),
		}
	}

	texts := make([]string, len(cl))
	lengths := make([]float64, len(cl))
	weights := make([]float64, len(cl))
	for i, s := range cl {
		texts[i] = s.text
		lengths[i] = float64(len([]rune(s.text)))
		// +1 keeps zero-engagement samples from vanishing entirely.
		weights[i] = s.sample.Engagement() + 1
	}

	avgLen, _ := stats.Mean(lengths)

	return &Fingerprint{
		SourceID:             c.SourceID,
		SampleCount:          len(cl),
		ExtractedAt:          time.Now().UTC(),
		AvgSampleLength:      avgLen,
		WeightedSampleLength: stat.Mean(lengths, weights),

		Punctuation:    punctuationProfile(texts),
		Capitalization: capitalizationProfile(texts),
		Sentences:      sentenceArchitecture(texts, e.morph),
		LanguageMix:    languageMix(texts, e.morph),
		Conjunctions:   conjunctionProfile(texts),
		LineStructure:  lineStructure(texts),
		Vocabulary:     vocabularyRichness(texts),
		Emoji:          emojiStrategy(texts),
		Openings:       openingPsychology(texts),
		Closings:       closingStrategy(texts),
		Thought:        thoughtStructure(texts),
		Emotion:        emotionalIntensity(texts),
		Reader:         readerRelationship(texts),
		Repetition:     repetitionPatterns(texts),
		Formatting:     formatPreferences(texts),
		Typing:         typingHabits(texts),

		ExampleSamples: corpus.Corpus{Samples: survivors(cl)}.TopByEngagement(exampleSampleLimit),
	}
}

// preprocess strips URLs and drops samples whose remaining text is too
// short to carry style signal.
func preprocess(samples []corpus.Sample) []cleaned {
	out := make([]cleaned, 0, len(samples))
	for _, s := range samples {
		text := textkit.StripURLs(s.Content)
		if len([]rune(text)) <= minCleanedLength {
			continue
		}
		out = append(out, cleaned{sample: s, text: text})
	}
	return out
}

func survivors(cl []cleaned) []corpus.Sample {
	out := make([]corpus.Sample, len(cl))
	for i, c := range cl {
		out[i] = c.sample
	}
	return out
}

// pct converts a hit count over n samples into a percentage.
func pct(hits, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(hits) / float64(n) * 100
}
