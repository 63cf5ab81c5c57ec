// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"go_5_sentence_coach/internal/ai"
	"go_5_sentence_coach/internal/config"
	"go_5_sentence_coach/internal/handlers"
	"go_5_sentence_coach/internal/repository"
	"go_5_sentence_coach/internal/service"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}
	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler).With(slog.String("app", config.AppName), slog.String("version", config.AppVersion))
	log.Println("Log Config Loaded...")

	slog.SetDefault(logger)
	slog.Info("Application starting...")

	// 外部API呼び出しは otelhttp でトレースできるようにする
	outbound := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	gemini, err := ai.NewGeminiClient(context.Background(), ai.GeminiConfig{
		APIKey:      config.Cfg.Gemini.APIKey,
		Model:       config.Cfg.Gemini.Model,
		BaseURL:     config.Cfg.Gemini.BaseURL,
		Temperature: config.Cfg.Gemini.Temperature,
		Timeout:     config.Cfg.Gemini.Timeout,
		MaxAttempts: config.Cfg.Gemini.MaxAttempts,
	}, outbound, logger)
	if err != nil {
		slog.Error("Error initializing Gemini client", slog.Any("error", err))
		os.Exit(1)
	}
	images := ai.NewImageClient(ai.ImageConfig{
		BaseURL: config.Cfg.Image.BaseURL,
		Width:   config.Cfg.Image.Width,
		Height:  config.Cfg.Image.Height,
		Model:   config.Cfg.Image.Model,
		Timeout: config.Cfg.Image.Timeout,
	}, outbound, logger)

	// Dependency Injection
	levelRepo := repository.NewJSONLevelRepository(config.Cfg.Data.LevelsPath, logger)
	activityRepo := repository.NewCSVActivityLogRepository(config.Cfg.Data.ActivityLogPath, logger)

	feedbackService := service.NewFeedbackService(levelRepo, activityRepo, gemini)
	scoringService := service.NewScoringService(levelRepo, activityRepo, images, gemini)

	pages, err := handlers.NewPageHandler(config.Cfg.Web.TemplateDir)
	if err != nil {
		slog.Error("Error loading page templates", slog.Any("error", err))
		os.Exit(1)
	}

	r := handlers.NewRouter(handlers.RouterDeps{
		Logger: logger,
		CORS: cors.Options{
			AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
			AllowedMethods:   config.Cfg.CORS.AllowedMethods,
			AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
			ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
			AllowCredentials: config.Cfg.CORS.AllowCredentials,
			MaxAge:           config.Cfg.CORS.MaxAge,
			Debug:            false,
		},
		StaticDir: config.Cfg.Web.StaticDir,
		Pages:     pages,
		Health:    handlers.NewHealthHandler(levelRepo),
		Feedback:  handlers.NewFeedbackHandler(feedbackService),
		Image:     handlers.NewImageHandler(scoringService),
	})

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  config.Cfg.Server.ReadTimeout,
		WriteTimeout: config.Cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	// 実行中の採点 (AI の再試行を含む) が終わるのを待つ
	ctx, cancel := context.WithTimeout(context.Background(), config.Cfg.Server.WriteTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
