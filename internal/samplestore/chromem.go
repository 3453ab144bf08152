package samplestore

import (
	"context"
	"fmt"
	"os"
	"strconv"

	chromem "github.com/philippgille/chromem-go"

	"github.com/typetone/typetone/internal/corpus"
	"github.com/typetone/typetone/internal/embeddings"
)

const collectionName = "samples"

// ChromemIndex implements Index using chromem-go. All corpora share one
// collection; a corpus_id metadata filter scopes queries.
type ChromemIndex struct {
	db         *chromem.DB
	collection *chromem.Collection
	embedFunc  chromem.EmbeddingFunc
}

// NewChromemIndex creates an in-memory index using the given embedder for
// document vectors.
func NewChromemIndex(embedder embeddings.Embedder) (*ChromemIndex, error) {
	db := chromem.NewDB()
	ef := embeddings.ToChromemFunc(embedder)

	col, err := db.GetOrCreateCollection(collectionName, nil, ef)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}
	return &ChromemIndex{db: db, collection: col, embedFunc: ef}, nil
}

// AddSamples indexes the given samples under corpusID. Samples with empty
// content are skipped.
func (ix *ChromemIndex) AddSamples(ctx context.Context, corpusID string, samples []corpus.Sample) error {
	docs := make([]chromem.Document, 0, len(samples))
	for _, s := range samples {
		if s.Content == "" {
			continue
		}
		docs = append(docs, chromem.Document{
			ID:      s.ID,
			Content: s.Content,
			Metadata: map[string]string{
				"corpus_id":  corpusID,
				"engagement": strconv.FormatFloat(s.Engagement(), 'f', -1, 64),
			},
		})
	}
	if len(docs) == 0 {
		return nil
	}
	return ix.collection.AddDocuments(ctx, docs, 1)
}

func (ix *ChromemIndex) SearchVector(ctx context.Context, vector []float32, corpusID string, topK int) ([]Match, error) {
	if topK <= 0 {
		topK = 10
	}
	// chromem-go requires nResults <= collection size.
	count := ix.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if topK > count {
		topK = count
	}

	where := map[string]string{"corpus_id": corpusID}
	results, err := ix.collection.QueryEmbedding(ctx, vector, topK, where, nil)
	if err != nil {
		return nil, fmt.Errorf("chromem query: %w", err)
	}

	matches := make([]Match, len(results))
	for i, r := range results {
		engagement, _ := strconv.ParseFloat(r.Metadata["engagement"], 64)
		matches[i] = Match{
			SampleID:   r.ID,
			Content:    r.Content,
			Similarity: float64(r.Similarity),
			Engagement: engagement,
		}
	}
	return matches, nil
}

// Count returns the number of indexed samples.
func (ix *ChromemIndex) Count() int {
	return ix.collection.Count()
}

// Persist saves the index to dir as a compressed gob archive, creating
// dir if needed.
func (ix *ChromemIndex) Persist(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating index dir: %w", err)
	}
	return ix.db.ExportToFile(dir+"/samples.gob.gz", true, "")
}

// Load restores the index from dir.
func (ix *ChromemIndex) Load(dir string) error {
	if err := ix.db.ImportFromFile(dir+"/samples.gob.gz", ""); err != nil {
		return fmt.Errorf("import from file: %w", err)
	}
	col := ix.db.GetCollection(collectionName, ix.embedFunc)
	if col == nil {
		return fmt.Errorf("collection %q not found after import", collectionName)
	}
	ix.collection = col
	return nil
}
