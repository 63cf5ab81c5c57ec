// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "sentence-coach"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort   = ":5000"
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 120 * time.Second
	MinWriteTimeout     = 90 * time.Second
	DefaultLogLevel     = "info"

	DefaultGeminiModel       = "gemini-2.5-flash-preview-09-2025"
	DefaultGeminiTemperature = 0.5
	DefaultGeminiTimeout     = 15 * time.Second
	DefaultGeminiMaxAttempts = 3

	DefaultImageBaseURL = "https://image.pollinations.ai"
	DefaultImageSize    = 512
	DefaultImageModel   = "stable-diffusion-xl"
	DefaultImageTimeout = 30 * time.Second

	DefaultLevelsPath      = "web/static/data/easy_mode.json"
	DefaultActivityLogPath = "record.csv"
	DefaultTemplateDir     = "web/templates"
	DefaultStaticDir       = "web/static"
)
