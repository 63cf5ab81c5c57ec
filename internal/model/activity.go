// internal/model/activity.go
package model

import "strconv"

// NotApplicable は該当しない列に入れる値です。
const NotApplicable = "nan"

// ActivityLogColumns はログファイルの列順です。どちらのフローでも同じ順で書き出します。
var ActivityLogColumns = []string{
	"timestamp", "level", "feedback_round", "selected_words", "accuracy",
	"user_sentence", "ai_feedback", "word_score", "sentence_score",
	"image_score", "total_score",
}

// ActivityLogRow はログファイルの1行です。全て文字列で保持します。
type ActivityLogRow struct {
	Timestamp     string
	Level         string
	FeedbackRound string
	SelectedWords string
	Accuracy      string
	UserSentence  string
	AIFeedback    string
	WordScore     string
	SentenceScore string
	ImageScore    string
	TotalScore    string
}

// Record は ActivityLogColumns と同じ順の値を返します。
func (r *ActivityLogRow) Record() []string {
	return []string{
		r.Timestamp, r.Level, r.FeedbackRound, r.SelectedWords, r.Accuracy,
		r.UserSentence, r.AIFeedback, r.WordScore, r.SentenceScore,
		r.ImageScore, r.TotalScore,
	}
}

// WithoutScores は採点欄を全て NotApplicable にします (フィードバックフロー用)。
func (r *ActivityLogRow) WithoutScores() *ActivityLogRow {
	r.WordScore = NotApplicable
	r.SentenceScore = NotApplicable
	r.ImageScore = NotApplicable
	r.TotalScore = NotApplicable
	return r
}

// WithScores は採点結果を書き込みます (採点フロー用)。
func (r *ActivityLogRow) WithScores(s ScoreRecord) *ActivityLogRow {
	r.WordScore = strconv.Itoa(s.WordScore)
	r.SentenceScore = strconv.Itoa(s.SentenceScore)
	r.ImageScore = strconv.Itoa(s.ImageScore)
	r.TotalScore = strconv.Itoa(s.TotalScore)
	return r
}
