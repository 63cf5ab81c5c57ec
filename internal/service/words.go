package service

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"go_5_sentence_coach/internal/model"
)

// AccuracyDivisor はパズルで選ぶ単語数です。正解セットの大きさとは無関係に固定です。
const AccuracyDivisor = 3

// foldKey は大文字小文字と全角半角を区別しない比較用のキーを返します。
// cases.Caser は並行利用できないので呼び出し毎に作ります。
func foldKey(s string) string {
	return cases.Fold().String(norm.NFKC.String(s))
}

func keySet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[foldKey(w)] = struct{}{}
	}
	return set
}

// PartitionWords は選択単語を正解セットに対して三分割します。
// 選択単語はそれぞれ CorrectSelected か WrongSelected のどちらか一方に、
// 正解単語は選ばれていなければ MissingWords に入ります。
func PartitionWords(selected, answers []string) model.WordPartition {
	answerKeys := keySet(answers)
	selectedKeys := keySet(selected)

	p := model.WordPartition{
		CorrectSelected: []string{},
		WrongSelected:   []string{},
		MissingWords:    []string{},
	}
	for _, w := range selected {
		if _, ok := answerKeys[foldKey(w)]; ok {
			p.CorrectSelected = append(p.CorrectSelected, w)
		} else {
			p.WrongSelected = append(p.WrongSelected, w)
		}
	}
	for _, a := range answers {
		if _, ok := selectedKeys[foldKey(a)]; !ok {
			p.MissingWords = append(p.MissingWords, a)
		}
	}
	return p
}

// CountCorrect は正解セットに含まれる選択単語の数を返します (順序に依存しない)。
func CountCorrect(selected, answers []string) int {
	answerKeys := keySet(answers)
	n := 0
	for _, w := range selected {
		if _, ok := answerKeys[foldKey(w)]; ok {
			n++
		}
	}
	return n
}

// joinWords は選択単語をカンマ区切りにします。1語もなければ NotApplicable を返します。
func joinWords(words []string) string {
	if len(words) == 0 {
		return model.NotApplicable
	}
	return strings.Join(words, ",")
}

// FormatAccuracy は correct/3 を小数2桁に丸め、小数6桁の文字列にします。例: 2 -> "0.670000"
func FormatAccuracy(correct int) string {
	v := math.Round(float64(correct)/AccuracyDivisor*100) / 100
	return fmt.Sprintf("%.6f", v)
}
