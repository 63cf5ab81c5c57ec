// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrUpstream       = errors.New("upstream service failed") // 外部AIサービスの失敗用
)

// AppError はクライアントに返すメッセージと原因のセンチネルエラーをまとめたエラー型です。
// Message は利用者にそのまま表示されるため、中国語(繁體)で記述します。
type AppError struct {
	Code    string // 例: "LEVEL_NOT_FOUND"
	Message string // レスポンスボディに入るメッセージ
	Field   string // 入力エラーの場合の対象フィールド (jsonタグ名)
	Err     error  // ErrInvalidInput などのセンチネル
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{Code: code, Message: message, Field: field, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// 利用者向けの固定メッセージ
const (
	MsgEnterSentence     = "請先輸入造句。"
	MsgLevelNotFound     = "找不到關卡資料"
	MsgServerError       = "伺服器處理錯誤。"
	MsgNoSentence        = "無輸入句子"
	MsgImageFailed       = "圖片生成失敗"
	MsgInvalidRequest    = "請求格式錯誤。"
	MsgAllFound          = "🌟 太厲害了！你完全觀察正確，找齊了所有單字！"
	MsgStillUndiscovered = "⚠️ 圖片裡還有一些東西你沒發現喔！"
)

var (
	ErrLevelNotFound = NewAppError("LEVEL_NOT_FOUND", MsgLevelNotFound, "level", ErrInvalidInput)
	ErrNoSentence    = NewAppError("EMPTY_SENTENCE", MsgNoSentence, "user_sentence", ErrInvalidInput)
	ErrImageFailed   = NewAppError("IMAGE_GENERATION_FAILED", MsgImageFailed, "", ErrUpstream)
)
