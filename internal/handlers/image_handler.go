// internal/handlers/image_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_sentence_coach/internal/middleware"
	"go_5_sentence_coach/internal/model"
	"go_5_sentence_coach/internal/service"
	"go_5_sentence_coach/internal/webutil"
)

// ImageErrorBody は画像APIのエラー形式 {"error": msg} です。
func ImageErrorBody(message string) any {
	return model.ImageErrorResponse{Error: message}
}

type ImageHandler struct {
	service service.ScoringService
}

func NewImageHandler(s service.ScoringService) *ImageHandler {
	return &ImageHandler{service: s}
}

// PostGenerateImage は POST /api/generate_image のハンドラ。
// 採点結果はログにのみ残し、レスポンスには画像だけを返します。
func (h *ImageHandler) PostGenerateImage(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PostGenerateImage"))

	var req model.ImageRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", model.MsgInvalidRequest, "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr, ImageErrorBody)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, webutil.NewValidationError(err), ImageErrorBody)
		return
	}

	result, err := h.service.GenerateImage(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err, ImageErrorBody)
		return
	}

	logger.Info("Image generated", slog.Int("total_score", result.Score.TotalScore))
	webutil.RespondWithJSON(w, http.StatusOK, model.ImageResponse{ImageData: result.ImageData}, logger)
}
