package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"go_5_sentence_coach/internal/middleware"
	"go_5_sentence_coach/internal/model"
)

// RouterDeps はルーターに登録するハンドラと設定です。
type RouterDeps struct {
	Logger    *slog.Logger
	CORS      cors.Options
	StaticDir string
	Pages     *PageHandler
	Health    *HealthHandler
	Feedback  *FeedbackHandler
	Image     *ImageHandler
}

// NewRouter はミドルウェアとルートを設定した chi ルーターを返します。
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(d.Logger))
	r.Use(cors.New(d.CORS).Handler)

	if d.Pages != nil {
		r.Group(func(r chi.Router) {
			r.Use(chimiddleware.Recoverer)
			r.Get("/", d.Pages.Index)
			r.Get("/easy", d.Pages.Easy)
			r.Get("/hard", d.Pages.Hard)
		})
	}
	if d.StaticDir != "" {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(d.StaticDir))))
	}

	r.Get("/health", d.Health.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.With(middleware.RecoverJSON(model.MsgServerError, FeedbackErrorBody)).
			Post("/ai_feedback", d.Feedback.PostFeedback)
		r.With(middleware.RecoverJSON(model.MsgServerError, ImageErrorBody)).
			Post("/generate_image", d.Image.PostGenerateImage)
	})

	return r
}
