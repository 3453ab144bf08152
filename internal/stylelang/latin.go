package stylelang

import (
	"strings"
	"unicode"
)

// Latin is a fallback strategy for Latin-script corpora. It treats
// non-ASCII-script tokens as foreign and uses English inflection suffixes
// for verb detection. It exists so the extractor stays usable on mixed
// corpora; it is not a serious English POS tagger.
type Latin struct{}

func (Latin) Name() string { return "latin" }

var englishFunctionWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"is": true, "are": true, "was": true, "were": true, "be": true, "been": true,
	"i": true, "you": true, "we": true, "they": true, "he": true, "she": true,
	"it": true, "this": true, "that": true, "of": true, "in": true, "on": true,
	"to": true, "for": true, "with": true, "at": true, "by": true, "from": true,
	"not": true, "no": true, "do": true, "does": true, "did": true, "have": true,
	"has": true, "had": true, "will": true, "would": true, "can": true, "could": true,
}

var englishVerbSuffixes = []string{"ing", "ed", "ize", "ise", "ify", "ate"}

func (Latin) ClassifyWord(token string) WordClass {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return ClassUnknown
	}
	for _, r := range token {
		if unicode.IsLetter(r) && r > unicode.MaxASCII {
			return ClassForeign
		}
		if !unicode.IsLetter(r) {
			return ClassUnknown
		}
	}
	return ClassNative
}

func (Latin) IsVerbLike(token string) bool {
	token = strings.ToLower(strings.TrimRightFunc(strings.TrimSpace(token), unicode.IsPunct))
	if len(token) < 4 || englishFunctionWords[token] {
		return false
	}
	for _, suf := range englishVerbSuffixes {
		if strings.HasSuffix(token, suf) {
			return true
		}
	}
	return false
}
