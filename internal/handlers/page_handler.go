package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"

	"go_5_sentence_coach/internal/middleware"
)

// ページテンプレートのファイル名
const (
	PageIndex = "index.html"
	PageEasy  = "easy_mode.html"
	PageHard  = "hard_mode.html"
)

type PageHandler struct {
	templates *template.Template
}

// NewPageHandler は dir 以下の三つのページテンプレートを読み込みます。
// 起動時に読めなければエラーを返します。
func NewPageHandler(dir string) (*PageHandler, error) {
	tmpl, err := template.ParseFiles(
		filepath.Join(dir, PageIndex),
		filepath.Join(dir, PageEasy),
		filepath.Join(dir, PageHard),
	)
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return &PageHandler{templates: tmpl}, nil
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, PageIndex)
}

func (h *PageHandler) Easy(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, PageEasy)
}

func (h *PageHandler) Hard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, PageHard)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, name string) {
	// 途中まで書いたレスポンスを返さないようにバッファに描画する
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, nil); err != nil {
		middleware.GetLogger(r.Context()).Error("Failed to render page", slog.String("page", name), slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
