// Package embeddings provides the embedding capability the example
// selector depends on. The capability is optional: callers degrade to
// engagement-based selection when no embedder is configured or a call
// fails.
package embeddings

import "context"

// Embedder turns text into a dense vector.
type Embedder interface {
	// Embed generates the embedding for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for several texts, in order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the vector width.
	Dimensions() int

	// Name identifies the embedding model.
	Name() string
}
