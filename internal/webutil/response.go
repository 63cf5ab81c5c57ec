// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go_5_sentence_coach/internal/model"

	"github.com/go-playground/validator/v10"
)

// ErrorRenderer はメッセージをエンドポイント固有のエラーボディに変換します。
// 例: フィードバックAPIは {"feedback": msg}、画像APIは {"error": msg}
type ErrorRenderer func(message string) any

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
// これがアプリケーションのエラーハンドリングの中心となります。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error, render ErrorRenderer) {
	statusCode := MapErrorToStatusCode(err)

	var message string
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
		logger.Warn("Request failed", slog.String("code", appErr.Code), slog.Int("status", statusCode), slog.Any("error", err))
	} else {
		// 予期せぬエラーの詳細はログのみに出力し、クライアントには汎用メッセージを返す
		logger.Error("Unhandled error", slog.Any("error", err))
		message = model.MsgServerError
	}

	RespondWithJSON(w, statusCode, render(message), logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	default:
		// 上流(AI/画像)の失敗も含め、それ以外は 500
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload any, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + model.MsgServerError + `"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		logger.Warn("Failed to write response", slog.Any("error", err))
	}
}

// NewValidationError は最初のバリデーションエラーを翻訳し、AppError として返します。
// バリデーションエラー以外はそのまま返します。
func NewValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}
	firstErr := validationErrors[0]
	return model.NewAppError(
		"VALIDATION_ERROR",
		firstErr.Translate(Trans),
		firstErr.Field(),
		model.ErrInvalidInput,
	)
}
