package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

// GeminiConfig holds the settings for GeminiClient.
type GeminiConfig struct {
	APIKey      string
	Model       string
	BaseURL     string // empty uses the SDK default endpoint
	Temperature float32
	Timeout     time.Duration // per attempt
	MaxAttempts int
}

// GeminiClient implements TextCompleter on top of the Gemini API.
//
// Rate-limited attempts (HTTP 429) back off linearly, 2s then 4s. Any other
// failure waits 1s before the next attempt. Failures never surface as Go
// errors; callers inspect the returned Completion.
type GeminiClient struct {
	cfg    GeminiConfig
	client *genai.Client // nil when no API key is configured
	logger *slog.Logger
	sleep  func(time.Duration)
}

// NewGeminiClient creates a GeminiClient. A missing API key is not an
// error: the client then answers every call with StatusNotConfigured.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig, httpClient *http.Client, logger *slog.Logger) (*GeminiClient, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	c := &GeminiClient{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "gemini"), slog.String("model", cfg.Model)),
		sleep:  time.Sleep,
	}

	if cfg.APIKey == "" {
		c.logger.Warn("Gemini API key is not configured, text completion is disabled")
		return c, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.BaseURL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	c.client = client
	return c, nil
}

func (c *GeminiClient) Complete(ctx context.Context, prompt, systemInstruction string) Completion {
	if c.client == nil {
		return Completion{Status: StatusNotConfigured}
	}

	// 呼び出し元が切断しても各試行は自身のタイムアウトまで続ける
	ctx = context.WithoutCancel(ctx)

	temperature := c.cfg.Temperature
	config := &genai.GenerateContentConfig{
		Temperature: &temperature,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
	}
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}

	var lastErr error
	for attempt := 0; attempt < c.cfg.MaxAttempts; attempt++ {
		last := attempt == c.cfg.MaxAttempts-1

		attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
		result, err := c.client.Models.GenerateContent(attemptCtx, c.cfg.Model, contents, config)
		cancel()

		if err != nil {
			lastErr = err
			if isRateLimited(err) {
				wait := time.Duration(attempt+1) * 2 * time.Second
				c.logger.Warn("Gemini rate limited", slog.Int("attempt", attempt+1), slog.Duration("wait", wait))
				if !last {
					c.sleep(wait)
				}
				continue
			}
			c.logger.Warn("Gemini request failed", slog.Int("attempt", attempt+1), slog.Any("error", err))
			if last {
				return Completion{Status: StatusUnavailable, Attempts: attempt + 1, Err: err}
			}
			c.sleep(time.Second)
			continue
		}

		text := firstText(result)
		if text == "" {
			return Completion{Status: StatusEmpty, Attempts: attempt + 1}
		}
		return Completion{Status: StatusOK, Text: text, Attempts: attempt + 1}
	}

	return Completion{Status: StatusRateLimited, Attempts: c.cfg.MaxAttempts, Err: lastErr}
}

// firstText returns the trimmed text of the first part of the first candidate.
func firstText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 {
		return ""
	}
	cand := result.Candidates[0]
	if cand == nil || cand.Content == nil || len(cand.Content.Parts) == 0 || cand.Content.Parts[0] == nil {
		return ""
	}
	return strings.TrimSpace(cand.Content.Parts[0].Text)
}

func isRateLimited(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return apiErrPtr.Code == http.StatusTooManyRequests
	}
	return false
}
