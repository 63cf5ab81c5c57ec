// internal/handlers/feedback_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_sentence_coach/internal/middleware"
	"go_5_sentence_coach/internal/model"
	"go_5_sentence_coach/internal/service"
	"go_5_sentence_coach/internal/webutil"
)

// FeedbackErrorBody はフィードバックAPIのエラー形式です。成功時と同じく "feedback" キーに入れます。
func FeedbackErrorBody(message string) any {
	return model.FeedbackResponse{Feedback: message}
}

type FeedbackHandler struct {
	service service.FeedbackService
}

func NewFeedbackHandler(s service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: s}
}

// PostFeedback は POST /api/ai_feedback のハンドラ
func (h *FeedbackHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PostFeedback"))

	var req model.FeedbackRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", model.MsgInvalidRequest, "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr, FeedbackErrorBody)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, webutil.NewValidationError(err), FeedbackErrorBody)
		return
	}

	feedback, err := h.service.GiveFeedback(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err, FeedbackErrorBody)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.FeedbackResponse{Feedback: feedback}, logger)
}
