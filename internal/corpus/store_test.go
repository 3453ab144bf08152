package corpus

import (
	"context"
	"testing"
	"time"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenMemoryStore()
	if err != nil {
		t.Fatalf("OpenMemoryStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoadCorpus(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	now := time.Now().UTC().Truncate(time.Second)
	samples := []Sample{
		{ID: "s1", Content: "older post", Likes: 4, Kind: KindOriginal, CreatedAt: now.Add(-time.Hour)},
		{ID: "s2", Content: "newer post", Likes: 2, Retweets: 1, Kind: KindReply, CreatedAt: now},
	}
	if err := s.SaveSamples(ctx, "acct", samples); err != nil {
		t.Fatalf("SaveSamples: %v", err)
	}

	c, err := s.LoadCorpus(ctx, "acct")
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}
	if len(c.Samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(c.Samples))
	}
	// Newest first.
	if c.Samples[0].ID != "s2" {
		t.Errorf("first sample = %q, want s2", c.Samples[0].ID)
	}
	if c.Samples[1].Kind != KindOriginal {
		t.Errorf("kind round-trip failed: %q", c.Samples[1].Kind)
	}
}

func TestSaveSamplesUpsert(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	if err := s.SaveSamples(ctx, "acct", []Sample{{ID: "s1", Content: "v1", Likes: 1}}); err != nil {
		t.Fatalf("SaveSamples: %v", err)
	}
	// Same id again with fresh engagement counts.
	if err := s.SaveSamples(ctx, "acct", []Sample{{ID: "s1", Content: "v1", Likes: 9}}); err != nil {
		t.Fatalf("SaveSamples upsert: %v", err)
	}

	n, err := s.CountSamples(ctx, "acct")
	if err != nil {
		t.Fatalf("CountSamples: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 sample after upsert, got %d", n)
	}

	smp, err := s.GetSample(ctx, "s1")
	if err != nil {
		t.Fatalf("GetSample: %v", err)
	}
	if smp == nil || smp.Likes != 9 {
		t.Errorf("expected updated likes 9, got %+v", smp)
	}
}

func TestTopEngagement(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	samples := []Sample{
		{ID: "low", Content: "low", Likes: 1},
		{ID: "high", Content: "high", Likes: 10, Retweets: 10},
		{ID: "mid", Content: "mid", Likes: 12},
	}
	if err := s.SaveSamples(ctx, "acct", samples); err != nil {
		t.Fatalf("SaveSamples: %v", err)
	}

	top, err := s.TopEngagement(ctx, "acct", 2)
	if err != nil {
		t.Fatalf("TopEngagement: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(top))
	}
	if top[0].ID != "high" || top[1].ID != "mid" {
		t.Errorf("order = %q, %q, want high, mid", top[0].ID, top[1].ID)
	}

	if got, err := s.TopEngagement(ctx, "acct", 0); err != nil || got != nil {
		t.Errorf("n=0 should return nil, got %v (%v)", got, err)
	}
}

func TestGetSampleMissing(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	smp, err := s.GetSample(ctx, "nope")
	if err != nil {
		t.Fatalf("GetSample: %v", err)
	}
	if smp != nil {
		t.Errorf("expected nil for missing sample, got %+v", smp)
	}
}

func TestCorpusIsolation(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	if err := s.SaveSamples(ctx, "a", []Sample{{ID: "a1", Content: "x"}}); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveSamples(ctx, "b", []Sample{{ID: "b1", Content: "y"}, {ID: "b2", Content: "z"}}); err != nil {
		t.Fatal(err)
	}

	na, _ := s.CountSamples(ctx, "a")
	nb, _ := s.CountSamples(ctx, "b")
	if na != 1 || nb != 2 {
		t.Errorf("counts = %d, %d, want 1, 2", na, nb)
	}
}
