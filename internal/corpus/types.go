// Package corpus holds the input side of the pipeline: authored text
// samples with engagement metadata, grouped per style source. Samples are
// produced by an external collector and are read-only here.
package corpus

import "time"

// SampleKind distinguishes how a sample was posted.
type SampleKind string

const (
	KindOriginal SampleKind = "original"
	KindReply    SampleKind = "reply"
	KindQuote    SampleKind = "quote"
)

// Sample is one unit of authored text plus its engagement counts.
type Sample struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	Likes     int        `json:"likes"`
	Retweets  int        `json:"retweets"`
	Replies   int        `json:"replies"`
	Bookmarks int        `json:"bookmarks"`
	Quotes    int        `json:"quotes"`
	Kind      SampleKind `json:"sample_kind"`
	CreatedAt time.Time  `json:"created_at"`
}

// Engagement is the canonical engagement score: reposts are worth twice a
// like because they put the text in front of a new audience.
func (s Sample) Engagement() float64 {
	return float64(s.Likes) + 2*float64(s.Retweets)
}

// Corpus is an ordered set of samples from one style source.
type Corpus struct {
	SourceID string   `json:"source_id"`
	Samples  []Sample `json:"samples"`
}

// TopByEngagement returns up to n samples with the highest engagement
// score, best first. The input order breaks ties.
func (c Corpus) TopByEngagement(n int) []Sample {
	if n <= 0 || len(c.Samples) == 0 {
		return nil
	}
	sorted := make([]Sample, len(c.Samples))
	copy(sorted, c.Samples)
	// Stable insertion keeps input order among equal scores.
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Engagement() > sorted[j-1].Engagement(); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
