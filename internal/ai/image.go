package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrNoImage is returned whenever no image could be produced. Callers
// treat it as absence and do not inspect the cause.
var ErrNoImage = errors.New("no image generated")

// ImageGenerator turns a sentence into an illustration.
type ImageGenerator interface {
	// GenerateImage returns the image encoded as standard base64.
	GenerateImage(ctx context.Context, sentence string) (string, error)
}

// ImageConfig holds the settings for ImageClient.
type ImageConfig struct {
	BaseURL string
	Width   int
	Height  int
	Model   string
	Timeout time.Duration
}

// ImageClient fetches generated images with a single unauthenticated GET.
type ImageClient struct {
	cfg        ImageConfig
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

func NewImageClient(cfg ImageConfig, httpClient *http.Client, logger *slog.Logger) *ImageClient {
	if logger == nil {
		logger = slog.Default()
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &ImageClient{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     logger.With(slog.String("component", "image")),
		now:        time.Now,
	}
}

// StylePrompt wraps a sentence in the children's-book illustration style.
func StylePrompt(sentence string) string {
	return "children's book illustration style, simple, cute, " + sentence
}

func (c *ImageClient) GenerateImage(ctx context.Context, sentence string) (string, error) {
	if sentence == "" {
		return "", ErrNoImage
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.imageURL(sentence), nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrNoImage, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Image request failed", slog.Any("error", err))
		return "", fmt.Errorf("%w: %v", ErrNoImage, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Image endpoint returned non-200", slog.Int("status", resp.StatusCode))
		return "", fmt.Errorf("%w: status %d", ErrNoImage, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrNoImage, err)
	}
	if len(body) == 0 {
		return "", fmt.Errorf("%w: empty body", ErrNoImage)
	}

	c.logger.Debug("Image generated", slog.Int("bytes", len(body)))
	return base64.StdEncoding.EncodeToString(body), nil
}

// imageURL builds {base}/prompt/{escaped prompt}?width=..&height=..&nologo=true&seed=..&model=..
// The seed is the current epoch second.
func (c *ImageClient) imageURL(sentence string) string {
	q := url.Values{}
	q.Set("width", strconv.Itoa(c.cfg.Width))
	q.Set("height", strconv.Itoa(c.cfg.Height))
	q.Set("nologo", "true")
	q.Set("seed", strconv.FormatInt(c.now().Unix(), 10))
	q.Set("model", c.cfg.Model)

	return strings.TrimRight(c.cfg.BaseURL, "/") + "/prompt/" + url.PathEscape(StylePrompt(sentence)) + "?" + q.Encode()
}
