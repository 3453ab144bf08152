// Package stylelang isolates the language-specific heuristics used by the
// fingerprint extractor. Loanword classification and verb-ending detection
// are suffix-list approximations tied to one language's morphology, so they
// live behind a strategy interface that a real tokenizer or POS tagger could
// replace without touching the extractor.
package stylelang

// WordClass is the result of classifying a single token.
type WordClass int

const (
	ClassUnknown WordClass = iota
	ClassNative
	ClassForeign
)

// Morphology is the pluggable language strategy.
type Morphology interface {
	// ClassifyWord decides whether token is native vocabulary, a foreign
	// loanword, or unclassifiable (numbers, symbols, mixed script).
	ClassifyWord(token string) WordClass

	// IsVerbLike reports whether token could plausibly be a conjugated
	// verb or adjective ending a clause.
	IsVerbLike(token string) bool

	// Name identifies the strategy.
	Name() string
}

// ForName returns the morphology strategy registered under name, falling
// back to Korean when the name is unknown.
func ForName(name string) Morphology {
	switch name {
	case "latin":
		return Latin{}
	default:
		return Korean{}
	}
}
