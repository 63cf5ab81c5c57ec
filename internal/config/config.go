// internal/config/config.go
package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port         string        `mapstructure:"port"`
		ReadTimeout  time.Duration `mapstructure:"read_timeout"`
		WriteTimeout time.Duration `mapstructure:"write_timeout"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Gemini struct {
		APIKey      string        `mapstructure:"api_key"`
		Model       string        `mapstructure:"model"`
		BaseURL     string        `mapstructure:"base_url"`
		Temperature float32       `mapstructure:"temperature"`
		Timeout     time.Duration `mapstructure:"timeout"`
		MaxAttempts int           `mapstructure:"max_attempts"`
	} `mapstructure:"gemini"`
	Image struct {
		BaseURL string        `mapstructure:"base_url"`
		Width   int           `mapstructure:"width"`
		Height  int           `mapstructure:"height"`
		Model   string        `mapstructure:"model"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"image"`
	Data struct {
		LevelsPath      string `mapstructure:"levels_path"`
		ActivityLogPath string `mapstructure:"activity_log_path"`
	} `mapstructure:"data"`
	Web struct {
		TemplateDir string `mapstructure:"template_dir"`
		StaticDir   string `mapstructure:"static_dir"`
	} `mapstructure:"web"`
}

var Cfg Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.read_timeout", DefaultReadTimeout)
	v.SetDefault("server.write_timeout", DefaultWriteTimeout)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Content-Type"})
	v.SetDefault("gemini.model", DefaultGeminiModel)
	v.SetDefault("gemini.temperature", DefaultGeminiTemperature)
	v.SetDefault("gemini.timeout", DefaultGeminiTimeout)
	v.SetDefault("gemini.max_attempts", DefaultGeminiMaxAttempts)
	v.SetDefault("image.base_url", DefaultImageBaseURL)
	v.SetDefault("image.width", DefaultImageSize)
	v.SetDefault("image.height", DefaultImageSize)
	v.SetDefault("image.model", DefaultImageModel)
	v.SetDefault("image.timeout", DefaultImageTimeout)
	v.SetDefault("data.levels_path", DefaultLevelsPath)
	v.SetDefault("data.activity_log_path", DefaultActivityLogPath)
	v.SetDefault("web.template_dir", DefaultTemplateDir)
	v.SetDefault("web.static_dir", DefaultStaticDir)
}

// LoadConfig は .env、設定ファイル、環境変数の順に読み込み Cfg に格納します。
// 設定ファイルがなくてもデフォルト値で起動できます。
func LoadConfig(path string) error {
	// .env はローカル開発用。存在しなければ何もしない
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	// 例: APP_SERVER_PORT -> server.port
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// APIキーは接頭辞なしの GEMINI_API_KEY で渡す
	if err := v.BindEnv("gemini.api_key", "GEMINI_API_KEY"); err != nil {
		return err
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	if cfg.Gemini.MaxAttempts <= 0 {
		log.Printf("Gemini max attempts invalid, using default '%d'", DefaultGeminiMaxAttempts)
		cfg.Gemini.MaxAttempts = DefaultGeminiMaxAttempts
	}
	// 画像生成 + 採点 (最大3回の再試行を含む) が収まるように書き込みタイムアウトを確保する
	if cfg.Server.WriteTimeout < MinWriteTimeout {
		log.Printf("Server write timeout too short, using '%s'", MinWriteTimeout)
		cfg.Server.WriteTimeout = MinWriteTimeout
	}
	if cfg.Gemini.APIKey == "" {
		log.Println("Warning: GEMINI_API_KEY is not set. AI feedback will be unavailable.")
	}

	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Gemini Model: %s", Cfg.Gemini.Model)
	log.Printf("Levels Path: %s", Cfg.Data.LevelsPath)

	return nil
}
