package ingredient

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"
)

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "대파", "대파"},
		{"parenthetical and padding", "  (참고) 대파  ", "대파"},
		{"invisible characters", "\u200b두부\ufeff", "두부"},
		{"ascii lowercased", "SPAM 200g", "spam200g"},
		{"nested parentheses", "(선택(없으면 생략)) 양파", "양파"},
		{"several notes", "감자(중)(2개)", "감자"},
		{"punctuation stripped", "다진-마늘, 1/2쪽!", "다진마늘12쪽"},
		{"decorative only", "★ ☆ ~", ""},
		{"note only", "(기호에 따라)", ""},
		{"empty", "", ""},
		{"decomposed hangul", norm.NFD.String("마늘"), "마늘"},
		{"unbalanced paren kept as noise", "양파 (1/2", "양파12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeToken(tt.raw))
		})
	}
}

func TestNormalizeTokenOnlyKeepsTokenRunes(t *testing.T) {
	inputs := []string{
		"Ｆｕｌｌｗｉｄｔｈ ＡＢＣ",
		"고추장 (태양초) 2T",
		"Crème Fraîche 100ml",
		"ㄱㄴㄷ 자모",
		"🍅 토마토 🍅",
		"\t\n 깻잎 10장",
	}
	for _, in := range inputs {
		for _, r := range NormalizeToken(in) {
			ok := (r >= '가' && r <= '힣') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
			assert.Truef(t, ok, "unexpected rune %q (upper=%v) in token for %q", r, unicode.IsUpper(r), in)
		}
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"  다진   마늘 (1쪽) ", "다진 마늘"},
		{"SPAM  Classic", "SPAM Classic"},
		{"\u200b양파\t\n1개", "양파 1개"},
		{"(생략 가능)", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanName(tt.raw), "CleanName(%q)", tt.raw)
	}
}
