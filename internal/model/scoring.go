// internal/model/scoring.go
package model

// ImageRequest は POST /api/generate_image のリクエストDTO
type ImageRequest struct {
	Level        *int     `json:"level" validate:"omitempty,gte=0"`
	UserSentence string   `json:"user_sentence" validate:"max=500"`
	CorrectWords []string `json:"correct_words" validate:"max=20,dive,max=64"`
}

func (r *ImageRequest) LevelOrDefault() int {
	if r.Level == nil {
		return DefaultLevel
	}
	return *r.Level
}

// ImageResponse は生成画像(base64)を返します。
type ImageResponse struct {
	ImageData string `json:"image_data"`
}

// ImageErrorResponse は画像APIのエラーレスポンス
type ImageErrorResponse struct {
	Error string `json:"error"`
}

// ScoreRecord は採点フローのみで作られます。
// WordScore 0..3, SentenceScore 0..4, ImageScore 0..3 が想定範囲ですが強制はしません。
type ScoreRecord struct {
	WordScore     int `json:"word_score"`
	SentenceScore int `json:"sentence_score"`
	ImageScore    int `json:"image_score"`
	TotalScore    int `json:"total_score"`
}

// ImageResult は画像生成と採点の結果です。
type ImageResult struct {
	ImageData string
	Score     ScoreRecord
}
