package tour

import (
	"regexp"
	"strings"
)

// Closed per-language vocabulary of "no more questions" words. Matching is
// whole-word so "no" never triggers inside "know" or "nothing unusual".
var passWords = map[string]struct{}{
	// Korean
	"패스": {}, "없어": {}, "괜찮아": {}, "없습니다": {}, "아니오": {},
	// English
	"pass": {}, "no": {}, "skip": {}, "next": {}, "none": {},
	// Chinese
	"跳过": {}, "没有": {}, "不用": {}, "不需要": {}, "不": {},
	// Japanese
	"パス": {}, "ない": {}, "いいえ": {}, "スキップ": {}, "なし": {},
	// French
	"passer": {}, "non": {}, "rien": {}, "suivant": {}, "aucun": {},
	// Spanish
	"pasar": {}, "nada": {}, "siguiente": {}, "ninguno": {},
	// Vietnamese
	"bỏ qua": {}, "không": {}, "không có": {}, "tiếp theo": {}, "không cần": {},
	// Thai
	"ผ่าน": {}, "ไม่มี": {}, "ไม่": {}, "ข้าม": {}, "ไม่ต้อง": {},
}

var passWordPattern = regexp.MustCompile(`[\pL\pN]+`)

// IsPassUtterance reports whether the utterance is a pass-class response.
// Single-token vocabulary entries match on word boundaries; multi-token
// entries (Vietnamese) match as phrases inside the normalized text.
func IsPassUtterance(text string) bool {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return false
	}
	for _, word := range passWordPattern.FindAllString(normalized, -1) {
		if _, ok := passWords[word]; ok {
			return true
		}
	}
	for phrase := range passWords {
		if !strings.Contains(phrase, " ") {
			continue
		}
		if strings.Contains(normalized, phrase) {
			return true
		}
	}
	return false
}
