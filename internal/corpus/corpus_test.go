package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEngagement(t *testing.T) {
	tests := []struct {
		name   string
		sample Sample
		want   float64
	}{
		{"likes only", Sample{Likes: 10}, 10},
		{"retweets count double", Sample{Likes: 10, Retweets: 5}, 20},
		{"replies do not count", Sample{Likes: 3, Replies: 100}, 3},
		{"zero", Sample{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sample.Engagement(); got != tt.want {
				t.Errorf("Engagement() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestTopByEngagement(t *testing.T) {
	c := Corpus{
		SourceID: "acct",
		Samples: []Sample{
			{ID: "low", Likes: 1},
			{ID: "high", Likes: 50},
			{ID: "mid-a", Likes: 10},
			{ID: "mid-b", Likes: 10},
		},
	}

	top := c.TopByEngagement(3)
	if len(top) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(top))
	}
	if top[0].ID != "high" {
		t.Errorf("top[0] = %q, want high", top[0].ID)
	}
	// Equal scores keep input order.
	if top[1].ID != "mid-a" || top[2].ID != "mid-b" {
		t.Errorf("tie order = %q, %q, want mid-a, mid-b", top[1].ID, top[2].ID)
	}

	if got := c.TopByEngagement(10); len(got) != 4 {
		t.Errorf("oversized n should return all samples, got %d", len(got))
	}
	if got := c.TopByEngagement(0); got != nil {
		t.Errorf("n=0 should return nil, got %v", got)
	}
}

func TestLoadFileWrapped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.json")
	content := `{
		"source_id": "writer-1",
		"samples": [
			{"id": "s1", "content": "first post", "likes": 3, "sample_kind": "original"},
			{"content": "second post", "likes": 1}
		]
	}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.SourceID != "writer-1" {
		t.Errorf("source id = %q, want writer-1", c.SourceID)
	}
	if len(c.Samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(c.Samples))
	}
	if c.Samples[0].ID != "s1" {
		t.Errorf("existing id should be kept, got %q", c.Samples[0].ID)
	}
	if c.Samples[1].ID == "" {
		t.Error("missing id should be assigned")
	}
	if c.Samples[1].Kind != KindOriginal {
		t.Errorf("missing kind should default to original, got %q", c.Samples[1].Kind)
	}
}

func TestLoadFileEmptyWrapper(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.json")
	content := `{"source_id": "writer-1", "samples": []}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.SourceID != "writer-1" {
		t.Errorf("source id = %q, want writer-1", c.SourceID)
	}
	if len(c.Samples) != 0 {
		t.Errorf("expected an empty corpus, got %d samples", len(c.Samples))
	}
}

func TestLoadFileBareArray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "writer-2.json")
	content := `[{"content": "only post", "likes": 7}]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	// Source id falls back to the file name.
	if c.SourceID != "writer-2" {
		t.Errorf("source id = %q, want writer-2", c.SourceID)
	}
	if len(c.Samples) != 1 || c.Samples[0].Likes != 7 {
		t.Errorf("unexpected samples: %+v", c.Samples)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "exports")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.json", "b.json", "c.txt"} {
		if err := os.WriteFile(filepath.Join(sub, name), []byte("[]"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := ExpandGlobs([]string{filepath.Join(sub, "*.json")})
	if err != nil {
		t.Fatalf("ExpandGlobs: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("expected 2 json files, got %v", files)
	}

	// Plain paths pass through even when they do not exist yet.
	plain := filepath.Join(dir, "direct.json")
	files, err = ExpandGlobs([]string{plain, plain})
	if err != nil {
		t.Fatalf("ExpandGlobs plain: %v", err)
	}
	if len(files) != 1 || files[0] != plain {
		t.Errorf("expected deduplicated passthrough, got %v", files)
	}
}
