package enrich

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/typetone/typetone/internal/corpus"
	"github.com/typetone/typetone/internal/fingerprint"
)

// MockProvider records calls and returns canned responses.
type MockProvider struct {
	mu       sync.Mutex
	Calls    []CompletionRequest
	Response *CompletionResponse
	Err      error
	ProvName string
}

func NewMockProvider(name string) *MockProvider {
	return &MockProvider{
		ProvName: name,
		Response: &CompletionResponse{
			Content:      "mock portrait",
			InputTokens:  10,
			OutputTokens: 20,
			Model:        "mock-model",
			FinishReason: "stop",
		},
	}
}

func (m *MockProvider) Name() string { return m.ProvName }

func (m *MockProvider) Complete(_ context.Context, req CompletionRequest) (*CompletionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, req)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func usableFingerprint() *fingerprint.Fingerprint {
	return &fingerprint.Fingerprint{
		SourceID:        "writer",
		SampleCount:     40,
		AvgSampleLength: 90,
		ExampleSamples: []corpus.Sample{
			{ID: "top", Content: "가장 반응이 좋았던 글", Likes: 40, Retweets: 3},
		},
	}
}

func TestEnrich(t *testing.T) {
	mock := NewMockProvider("test")
	e := NewEnricher(mock, "custom-model")

	prose, err := e.Enrich(context.Background(), usableFingerprint(), nil)
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}
	if prose != "mock portrait" {
		t.Errorf("prose = %q", prose)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}

	req := mock.Calls[0]
	if req.Model != "custom-model" {
		t.Errorf("model = %q, want custom-model", req.Model)
	}
	if req.Temperature != defaultTemperature {
		t.Errorf("temperature = %v, want %v", req.Temperature, defaultTemperature)
	}
	if len(req.Messages) != 2 || req.Messages[0].Role != RoleSystem || req.Messages[1].Role != RoleUser {
		t.Fatalf("messages = %+v, want system then user", req.Messages)
	}

	user := req.Messages[1].Content
	if !strings.Contains(user, `"source_id": "writer"`) {
		t.Error("user prompt missing the fingerprint JSON")
	}
	if !strings.Contains(user, "가장 반응이 좋았던 글") {
		t.Error("user prompt missing the retained example samples")
	}
}

func TestEnrichDefaultsModel(t *testing.T) {
	mock := NewMockProvider("test")
	e := NewEnricher(mock, "")

	if _, err := e.Enrich(context.Background(), usableFingerprint(), nil); err != nil {
		t.Fatalf("Enrich: %v", err)
	}
	if got := mock.Calls[0].Model; got != defaultModel {
		t.Errorf("model = %q, want %q", got, defaultModel)
	}
}

func TestEnrichFallsBackToCorpusSamples(t *testing.T) {
	mock := NewMockProvider("test")
	e := NewEnricher(mock, "")

	fp := usableFingerprint()
	fp.ExampleSamples = nil
	c := &corpus.Corpus{Samples: []corpus.Sample{
		{ID: "a", Content: "코퍼스에서 온 글", Likes: 9},
	}}

	if _, err := e.Enrich(context.Background(), fp, c); err != nil {
		t.Fatalf("Enrich: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[1].Content, "코퍼스에서 온 글") {
		t.Error("prompt should fall back to corpus top posts when the fingerprint kept none")
	}
}

func TestEnrichErrors(t *testing.T) {
	ctx := context.Background()

	var nilEnricher *Enricher
	if _, err := nilEnricher.Enrich(ctx, usableFingerprint(), nil); err == nil {
		t.Error("expected an error from a nil enricher")
	}
	if _, err := NewEnricher(nil, "").Enrich(ctx, usableFingerprint(), nil); err == nil {
		t.Error("expected an error without a provider")
	}
	if _, err := NewEnricher(NewMockProvider("t"), "").Enrich(ctx, nil, nil); err == nil {
		t.Error("expected an error for a nil fingerprint")
	}
	if _, err := NewEnricher(NewMockProvider("t"), "").Enrich(ctx, &fingerprint.Fingerprint{InsufficientData: true}, nil); err == nil {
		t.Error("expected an error for an insufficient fingerprint")
	}

	failing := NewMockProvider("t")
	failing.Err = errors.New("rate limited")
	if _, err := NewEnricher(failing, "").Enrich(ctx, usableFingerprint(), nil); err == nil {
		t.Error("expected the provider error to surface")
	}

	empty := NewMockProvider("t")
	empty.Response = &CompletionResponse{Content: "  \n"}
	if _, err := NewEnricher(empty, "").Enrich(ctx, usableFingerprint(), nil); err == nil {
		t.Error("expected an error for an empty response")
	}
}

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain prose", "A calm, direct voice.", "A calm, direct voice."},
		{"surrounding whitespace", "\n\n  prose here \n", "prose here"},
		{"plain fence", "```\nfenced prose\n```", "fenced prose"},
		{"language fence", "```markdown\nfenced prose\n```", "fenced prose"},
		{"fence without newline", "```prose```", "prose"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanResponse(tt.raw); got != tt.want {
				t.Errorf("CleanResponse(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFactoryReturnsErrorForMissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := NewProvider("openai", "gpt-4o-mini"); err == nil {
		t.Error("expected error for openai with missing API key")
	}
}

func TestFactoryReturnsErrorForUnknownBackend(t *testing.T) {
	if _, err := NewProvider("unknown", "some-model"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestFactoryCreatesOpenAIProvider(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	provider, err := NewProvider("openai", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.Name() != "openai" {
		t.Errorf("expected name 'openai', got %q", provider.Name())
	}
}

func TestFactoryCreatesOllamaWithDefaultHost(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "")
	provider, err := NewProvider("ollama", "llama3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ollamaP, ok := provider.(*OllamaProvider)
	if !ok {
		t.Fatal("expected *OllamaProvider")
	}
	if ollamaP.baseURL != "http://localhost:11434" {
		t.Errorf("expected default host, got %q", ollamaP.baseURL)
	}
}

func TestRateLimiterPassesThrough(t *testing.T) {
	mock := NewMockProvider("test")
	rl := NewRateLimitedProvider(mock, 60)

	resp, err := rl.Complete(context.Background(), CompletionRequest{Model: "m"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "mock portrait" {
		t.Errorf("content = %q", resp.Content)
	}
	if rl.Name() != "test" {
		t.Errorf("name = %q, want test", rl.Name())
	}
}

func TestRateLimiterLimitsRequests(t *testing.T) {
	mock := NewMockProvider("test")
	rl := NewRateLimitedProvider(mock, 2)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	req := CompletionRequest{Model: "m"}

	for i := 0; i < 2; i++ {
		if _, err := rl.Complete(ctx, req); err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
	}

	// The bucket is empty and refills far too slowly for this deadline.
	if _, err := rl.Complete(ctx, req); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("third request error = %v, want deadline exceeded", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("provider saw %d calls, want 2", mock.CallCount())
	}
}
