package service

import (
	"fmt"
	"strings"
)

// FeedbackSystemInstruction は講評AIの人物設定と出力規則です。
const FeedbackSystemInstruction = "你是一位國中一年級英文老師。請根據『原始圖片包含的正確單字』進行回饋。\n" +
	"1. 禁止使用任何 Markdown 符號（如 ** 或 __）。\n" +
	"2. 每一點 (1., 2., 3.) 之前必須換行。\n" +
	"3. 單字提示：請專注於針對『學生漏選的正確單字』提供外觀、特徵或位置線索，不准說出英文單字本身。\n" +
	"4. 畫面引導：必須嚴格參考『原始圖片正確單字』。如果學生造句與圖中事實不符（例如圖中是鴨子，學生寫貓），請禮貌指出。每次只建議增加一個簡單細節，引導學生慢慢改進。"

// GradingSystemInstruction は採点AIの人物設定です。
const GradingSystemInstruction = "你是一位專業的英文老師。請根據要求評分並僅回傳 JSON 格式。"

// FeedbackPromptInput は講評プロンプトに埋め込む値です。
type FeedbackPromptInput struct {
	TargetAnswers   []string
	CorrectSelected []string
	WrongSelected   []string
	MissingWords    []string
	UserSentence    string
	SentencePrompt  string
}

// BuildFeedbackPrompt は事実参考と三点形式の回答テンプレートを含むプロンプトを作ります。
func BuildFeedbackPrompt(in FeedbackPromptInput) string {
	var b strings.Builder
	b.WriteString("【事實參考】\n")
	fmt.Fprintf(&b, "圖片中真實存在的正確單字: %s\n", strings.Join(in.TargetAnswers, ", "))
	fmt.Fprintf(&b, "學生選中的正確單字: %s\n", strings.Join(in.CorrectSelected, ", "))
	fmt.Fprintf(&b, "學生選錯的單字: %s\n", strings.Join(in.WrongSelected, ", "))
	fmt.Fprintf(&b, "學生遺漏的單字: %s\n", strings.Join(in.MissingWords, ", "))
	fmt.Fprintf(&b, "學生目前造句: 『%s』\n", in.UserSentence)
	fmt.Fprintf(&b, "要求句型: 『%s』\n\n", in.SentencePrompt)
	b.WriteString("請依照此格式回報：\n\n")
	b.WriteString("1. 單字提示：(若有漏選，提供其特徵線索；若有選錯，溫和糾正。請勿列出正確單字拼法)\n\n")
	b.WriteString("2. 文法修正：(分析造句文法，並檢查是否『符合圖片事實』)\n\n")
	b.WriteString("3. 畫面引導建議：(根據圖片內容，引導學生下一步可以加入的一個小細節，例如顏色或大小)")
	return b.String()
}

// BuildGradingPrompt は造句 (0-4) と画像 (0-3) の採点を JSON で求めるプロンプトを作ります。
func BuildGradingPrompt(targetAnswers []string, userSentence string) string {
	var b strings.Builder
	b.WriteString("請針對以下學生的表現給分：\n")
	fmt.Fprintf(&b, "目標單字：%s\n", strings.Join(targetAnswers, ", "))
	fmt.Fprintf(&b, "學生造句：『%s』\n\n", userSentence)
	b.WriteString("評分準則：\n")
	b.WriteString("1. 造句分數 (sentence_score, 0-4分)：評估文法、內容豐富度、是否包含目標單字。\n")
	b.WriteString("2. 圖片分數 (image_score, 0-3分)：評估此句子生成的畫面是否與目標單字內容語意相符（最高3分）。\n")
	b.WriteString(`請嚴格回傳此格式：{"sentence_score": 分數, "image_score": 分數}`)
	return b.String()
}
