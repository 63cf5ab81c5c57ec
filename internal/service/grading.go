package service

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ParseGrading は採点AIの応答 {"sentence_score": n, "image_score": n} を解釈します。
// コードフェンスは取り除きます。解析できない場合やキーが欠けている場合は 0, 0, false を返します。
func ParseGrading(text string) (sentenceScore, imageScore int, ok bool) {
	clean := strings.ReplaceAll(text, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	var scores map[string]any
	if err := json.Unmarshal([]byte(clean), &scores); err != nil {
		return 0, 0, false
	}

	s, sok := scoreValue(scores["sentence_score"])
	i, iok := scoreValue(scores["image_score"])
	if !sok || !iok {
		return 0, 0, false
	}
	return s, i, true
}

// scoreValue は数値 (小数は切り捨て) または数字の文字列を int にします。
func scoreValue(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
