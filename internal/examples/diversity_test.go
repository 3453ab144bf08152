package examples

import (
	"fmt"
	"strings"
	"testing"

	"github.com/typetone/typetone/internal/corpus"
)

func scoredWith(contents ...string) []ScoredExample {
	out := make([]ScoredExample, len(contents))
	for i, c := range contents {
		out[i] = ScoredExample{
			Sample:      corpus.Sample{ID: fmt.Sprintf("s%d", i), Content: c},
			HybridScore: 1.0 - 0.1*float64(i),
		}
	}
	return out
}

func ids(scored []ScoredExample) []string {
	out := make([]string, len(scored))
	for i, ex := range scored {
		out[i] = ex.Sample.ID
	}
	return out
}

func longText(opening string) string {
	return opening + " " + strings.Repeat("가", 120)
}

func TestDiversityFilterPassthrough(t *testing.T) {
	scored := scoredWith("하나", "둘", "셋")

	got := diversityFilter(scored, 5)
	if len(got) != 3 {
		t.Errorf("got %d entries, want all 3 when under the limit", len(got))
	}
	if got := diversityFilter(scored, 0); got != nil {
		t.Errorf("limit 0 returned %v, want nil", got)
	}
}

func TestDiversityFilterCategoryCaps(t *testing.T) {
	scored := scoredWith(
		"짧은 글 하나",
		"짧은 글 둘",
		"짧은 글 셋",
		longText("첫 긴 질문인데 어떻게 생각하나?"),
		longText("둘째 긴 질문도 궁금하지 않나?"),
	)

	got := diversityFilter(scored, 4)
	want := []string{"s0", "s1", "s3", "s4"}
	if g := ids(got); !equalStrings(g, want) {
		t.Errorf("got %v, want %v (third short statement skipped)", g, want)
	}
}

func TestDiversityFilterOpeningDedup(t *testing.T) {
	scored := scoredWith(
		"오늘 배운 것 하나를 적었다",
		"이거 왜 되는 걸까? 궁금하다",
		longText("완전히 다른 시작으로 쓴 글"),
		"오늘 배운 것 둘을 적었다",
		longText("다들 어떻게 생각하나? 궁금해서"),
		longText("마지막 후보는 또 다르게 연다"),
	)

	got := diversityFilter(scored, 5)
	want := []string{"s0", "s1", "s2", "s4", "s5"}
	if g := ids(got); !equalStrings(g, want) {
		t.Errorf("got %v, want %v (repeated opening skipped)", g, want)
	}
}

func TestDiversityFilterOpeningDedupOnlyAfterThree(t *testing.T) {
	scored := scoredWith(
		"오늘 배운 것 하나",
		"오늘 배운 것 둘",
		longText("긴 질문 하나는 어떤가?"),
		longText("남는 자리를 채울 후보는?"),
	)

	got := diversityFilter(scored, 3)
	want := []string{"s0", "s1", "s2"}
	if g := ids(got); !equalStrings(g, want) {
		t.Errorf("got %v, want %v (dedup is off for the first picks)", g, want)
	}
}

func TestDiversityFilterBackfills(t *testing.T) {
	scored := scoredWith(
		"짧은 통계 하나",
		"짧은 통계 둘",
		"짧은 통계 셋",
		"짧은 통계 넷",
		"짧은 통계 다섯",
	)

	got := diversityFilter(scored, 3)
	if len(got) != 3 {
		t.Fatalf("got %d entries, want the limit of 3 even with one crowded category", len(got))
	}
	want := []string{"s0", "s1", "s2"}
	if g := ids(got); !equalStrings(g, want) {
		t.Errorf("got %v, want backfill in rank order %v", g, want)
	}
}

func TestOpeningKey(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"한 단어", "한 단어"},
		{"Today I Learned something new", "today i learned"},
		{"오늘   배운   것   하나", "오늘 배운 것"},
	}
	for _, tt := range tests {
		if got := openingKey(tt.text); got != tt.want {
			t.Errorf("openingKey(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
