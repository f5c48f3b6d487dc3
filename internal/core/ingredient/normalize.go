package ingredient

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// 最內層括號註解，重複移除以處理巢狀
	parentheticalPattern = regexp.MustCompile(`\([^()]*\)`)
	// 比對用 token 只保留韓文音節、小寫英文與數字
	nonTokenPattern = regexp.MustCompile(`[^가-힣a-z0-9]+`)

	invisibleReplacer = strings.NewReplacer(
		"\u200b", "",
		"\u200c", "",
		"\u200d", "",
		"\u2060", "",
		"\ufeff", "",
	)
)

// stripNoise 移除不可見字元與括號註解
func stripNoise(raw string) string {
	value := norm.NFC.String(raw)
	value = invisibleReplacer.Replace(value)
	for {
		next := parentheticalPattern.ReplaceAllString(value, "")
		if next == value {
			return value
		}
		value = next
	}
}

// NormalizeToken 產生比對用的正規化 token，可能回傳空字串
func NormalizeToken(raw string) string {
	value := strings.ToLower(strings.TrimSpace(stripNoise(raw)))
	return nonTokenPattern.ReplaceAllString(value, "")
}

// CleanName 產生顯示用名稱，保留大小寫與單一空白
func CleanName(raw string) string {
	return strings.Join(strings.Fields(stripNoise(raw)), " ")
}
