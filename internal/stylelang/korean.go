package stylelang

import (
	"strings"
	"unicode"
)

// Korean classifies tokens for Korean-language corpora. Latin-script tokens
// and common Hangul transliterations count as loanwords; verb detection is a
// suffix match against the usual sentence-final endings.
type Korean struct{}

func (Korean) Name() string { return "korean" }

// commonLoanwords are frequent Hangul transliterations of English words.
// The list is deliberately small: it only needs to catch the loanwords that
// actually recur in short social text.
var commonLoanwords = map[string]bool{
	"커피": true, "컴퓨터": true, "스마트폰": true, "폰": true, "앱": true,
	"서비스": true, "시스템": true, "데이터": true, "콘텐츠": true, "마케팅": true,
	"브랜드": true, "디자인": true, "트렌드": true, "팁": true, "포인트": true,
	"스타일": true, "미팅": true, "프로젝트": true, "비즈니스": true, "팀": true,
	"리더": true, "멤버": true, "팔로워": true, "트윗": true, "피드": true,
	"알고리즘": true, "플랫폼": true, "유저": true, "테스트": true, "업데이트": true,
	"레벨": true, "타이밍": true, "이슈": true, "리스크": true, "케이스": true,
	"프로세스": true, "루틴": true, "에너지": true, "멘탈": true, "스트레스": true,
}

// loanwordSuffixes catch transliteration patterns the list misses.
var loanwordSuffixes = []string{"팅", "션", "럼", "퓨", "큐", "트럭"}

// verbEndings are sentence-final conjugations for verbs and adjectives.
// Longest endings first so the strongest match wins.
var verbEndings = []string{
	"습니다", "ㅂ니다", "입니다", "네요", "세요", "어요", "아요", "해요", "데요",
	"군요", "거든요", "잖아요", "았다", "었다", "했다", "이다", "한다", "된다",
	"있다", "없다", "같다", "겠다", "져요", "죠", "요", "다", "까", "니", "지", "래",
}

func (Korean) ClassifyWord(token string) WordClass {
	token = strings.TrimSpace(token)
	if token == "" {
		return ClassUnknown
	}

	hangul, latin, other := 0, 0, 0
	for _, r := range token {
		switch {
		case unicode.Is(unicode.Hangul, r):
			hangul++
		case unicode.IsLetter(r) && r < unicode.MaxASCII:
			latin++
		case unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSymbol(r):
			// ignored
		default:
			other++
		}
	}

	// Pure Latin-script word inside a Korean corpus is a loanword.
	if latin > 0 && hangul == 0 {
		return ClassForeign
	}
	if hangul == 0 {
		return ClassUnknown
	}
	if other > 0 || latin > 0 {
		return ClassUnknown
	}

	// Strip one particle-like final syllable before the dictionary check so
	// "커피를" still matches "커피".
	if commonLoanwords[token] {
		return ClassForeign
	}
	runes := []rune(token)
	if len(runes) > 1 && commonLoanwords[string(runes[:len(runes)-1])] {
		return ClassForeign
	}
	for _, suf := range loanwordSuffixes {
		if strings.HasSuffix(token, suf) {
			return ClassForeign
		}
	}
	return ClassNative
}

func (Korean) IsVerbLike(token string) bool {
	token = strings.TrimRightFunc(strings.TrimSpace(token), func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
	if token == "" {
		return false
	}
	for _, end := range verbEndings {
		if strings.HasSuffix(token, end) && len([]rune(token)) > len([]rune(end)) {
			return true
		}
	}
	return false
}
