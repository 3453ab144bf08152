// Package samplestore provides the similarity-search capability: a vector
// index over corpus samples, backed by chromem-go. Like the embedding
// capability it is optional; the selector degrades to engagement ordering
// when it is absent or failing.
package samplestore

import "context"

// Match is one similarity-search hit.
type Match struct {
	SampleID   string  `json:"sample_id"`
	Content    string  `json:"content"`
	Similarity float64 `json:"similarity"`
	Engagement float64 `json:"engagement"`
}

// Index is the similarity-search capability surface.
type Index interface {
	// SearchVector returns up to topK samples from the given corpus,
	// most similar first. An empty result is not an error.
	SearchVector(ctx context.Context, vector []float32, corpusID string, topK int) ([]Match, error)
}
