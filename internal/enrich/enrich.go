// Package enrich adds a qualitative voice portrait on top of the
// quantitative fingerprint. It is strictly additive: nothing in the
// scoring pipeline depends on its output, and a missing or failing
// provider only means the portrait stays empty.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/typetone/typetone/internal/corpus"
	"github.com/typetone/typetone/internal/fingerprint"
)

const (
	defaultModel       = "gpt-4o-mini"
	defaultTemperature = 0.4
	maxPromptSamples   = 8
)

const systemPrompt = `You are a writing-style analyst. You receive a
statistical profile of one author's short-form posts plus a few of their
highest-performing originals. Describe their voice in concrete, imitable
prose: tone, rhythm, how they open and close, what they never do. Write
3-5 short paragraphs. No bullet lists, no headings, no restating the
numbers.`

// Enricher runs the qualitative enrichment pass.
type Enricher struct {
	provider Provider
	model    string
}

// NewEnricher creates an Enricher on the given provider. The model may be
// empty, in which case the provider default applies.
func NewEnricher(provider Provider, model string) *Enricher {
	return &Enricher{provider: provider, model: model}
}

// Enrich asks the provider for a prose portrait of the author's voice.
// It returns an error when no provider is configured or the fingerprint
// carries no usable data.
func (e *Enricher) Enrich(ctx context.Context, fp *fingerprint.Fingerprint, c *corpus.Corpus) (string, error) {
	if e == nil || e.provider == nil {
		return "", fmt.Errorf("no enrichment provider configured")
	}
	if fp == nil || fp.InsufficientData {
		return "", fmt.Errorf("fingerprint has insufficient data for enrichment")
	}

	userPrompt, err := buildPrompt(fp, c)
	if err != nil {
		return "", fmt.Errorf("failed to build enrichment prompt: %w", err)
	}

	model := e.model
	if model == "" {
		model = defaultModel
	}

	resp, err := e.provider.Complete(ctx, CompletionRequest{
		Model:       model,
		Temperature: defaultTemperature,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("enrichment completion failed: %w", err)
	}

	prose := CleanResponse(resp.Content)
	if prose == "" {
		return "", fmt.Errorf("enrichment returned an empty response")
	}
	return prose, nil
}

// buildPrompt renders the fingerprint as JSON and appends the strongest
// originals. The example samples come from the fingerprint itself so the
// pass works without corpus access.
func buildPrompt(fp *fingerprint.Fingerprint, c *corpus.Corpus) (string, error) {
	profile, err := json.MarshalIndent(fp, "", "  ")
	if err != nil {
		return "", err
	}

	samples := fp.ExampleSamples
	if len(samples) == 0 && c != nil {
		samples = c.TopByEngagement(maxPromptSamples)
	}
	if len(samples) > maxPromptSamples {
		samples = samples[:maxPromptSamples]
	}

	var b strings.Builder
	b.WriteString("Style profile:\n")
	b.Write(profile)
	b.WriteString("\n\nTop posts by engagement:\n")
	for i, s := range samples {
		fmt.Fprintf(&b, "\n--- post %d (likes %d, retweets %d) ---\n%s\n",
			i+1, s.Likes, s.Retweets, s.Content)
	}
	return b.String(), nil
}

// CleanResponse strips markdown code fences and surrounding whitespace
// from a model response. Models sometimes wrap prose output in fences
// despite instructions.
func CleanResponse(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
