// internal/model/feedback.go
package model

// FeedbackRequest は POST /api/ai_feedback のリクエストDTO
type FeedbackRequest struct {
	Level          *int     `json:"level" validate:"omitempty,gte=0"`
	UserSentence   string   `json:"user_sentence" validate:"max=500"`
	SentencePrompt string   `json:"sentence_prompt" validate:"max=500"`
	CorrectWords   []string `json:"correct_words" validate:"max=20,dive,max=64"` // 学習者が選んだ単語 (名前は旧フロントエンド互換)
	FeedbackCount  int      `json:"feedback_count" validate:"gte=0"`
}

// LevelOrDefault は level 未指定時に DefaultLevel を返します。
func (r *FeedbackRequest) LevelOrDefault() int {
	if r.Level == nil {
		return DefaultLevel
	}
	return *r.Level
}

// FeedbackResponse は成功時もエラー時も同じ形で返します。
type FeedbackResponse struct {
	Feedback string `json:"feedback"`
}

// WordPartition は選択単語と正解セットの大文字小文字を区別しない三分割です。
type WordPartition struct {
	CorrectSelected []string // 選択した単語のうち正解 (選択時の表記)
	WrongSelected   []string // 選択した単語のうち不正解 (選択時の表記)
	MissingWords    []string // 選ばれなかった正解 (正解セットの表記)
}

// AllFound は選び間違いも見落としもない場合に true を返します。
func (p WordPartition) AllFound() bool {
	return len(p.WrongSelected) == 0 && len(p.MissingWords) == 0
}
