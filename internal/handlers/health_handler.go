package handlers

import (
	"log/slog"
	"net/http"

	"go_5_sentence_coach/internal/middleware"
	"go_5_sentence_coach/internal/repository"
	"go_5_sentence_coach/internal/webutil"
)

type HealthHandler struct {
	levels repository.LevelRepository
}

func NewHealthHandler(levels repository.LevelRepository) *HealthHandler {
	return &HealthHandler{levels: levels}
}

// GetHealth は関卡データが読めるかを確認します。
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	if err := h.levels.Ping(r.Context()); err != nil {
		logger.Error("Health check failed: level data unreadable", slog.Any("error", err))
		webutil.RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"}, logger)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
}
