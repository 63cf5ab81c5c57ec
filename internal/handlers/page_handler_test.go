package handlers_test

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go_5_sentence_coach/internal/handlers"
	repomocks "go_5_sentence_coach/internal/repository/mocks"
)

// writePages は三つのページテンプレートを dir に書き出します。
func writePages(t *testing.T, dir string) {
	t.Helper()
	for _, name := range []string{handlers.PageIndex, handlers.PageEasy, handlers.PageHard} {
		content := `<!DOCTYPE html><html><body><h1>` + name + `</h1></body></html>`
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func TestPageHandler(t *testing.T) {
	dir := t.TempDir()
	writePages(t, dir)
	pages, err := handlers.NewPageHandler(dir)
	require.NoError(t, err)

	server := newTestServer(t, handlers.RouterDeps{Pages: pages})

	for path, page := range map[string]string{
		"/":     handlers.PageIndex,
		"/easy": handlers.PageEasy,
		"/hard": handlers.PageHard,
	} {
		t.Run(path, func(t *testing.T) {
			resp, err := server.Client().Get(server.URL + path)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
			assert.Contains(t, string(body), "<h1>"+page+"</h1>")
		})
	}
}

func TestNewPageHandler_MissingTemplate(t *testing.T) {
	_, err := handlers.NewPageHandler(t.TempDir())
	assert.Error(t, err)
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "easy_mode.json"), []byte(`[]`), 0o644))

	server := newTestServer(t, handlers.RouterDeps{StaticDir: dir})

	_, body := sendRequest(t, server,
		httpRequestDetails{Method: http.MethodGet, Path: "/static/data/easy_mode.json"},
		httpResponseExpectations{ExpectedCode: http.StatusOK},
	)
	assert.Equal(t, "[]", string(body))
}

func TestHealthHandler(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		levels := repomocks.NewLevelRepository(t)
		levels.On("Ping", mock.Anything).Return(nil).Once()
		server := newTestServer(t, handlers.RouterDeps{Health: handlers.NewHealthHandler(levels)})

		_, body := sendRequest(t, server,
			httpRequestDetails{Method: http.MethodGet, Path: "/health"},
			httpResponseExpectations{ExpectedCode: http.StatusOK},
		)
		assert.Equal(t, map[string]string{"status": "ok"}, decodeBody(t, body))
	})

	t.Run("関卡データが読めない", func(t *testing.T) {
		levels := repomocks.NewLevelRepository(t)
		levels.On("Ping", mock.Anything).Return(errors.New("no such file")).Once()
		server := newTestServer(t, handlers.RouterDeps{Health: handlers.NewHealthHandler(levels)})

		_, body := sendRequest(t, server,
			httpRequestDetails{Method: http.MethodGet, Path: "/health"},
			httpResponseExpectations{ExpectedCode: http.StatusServiceUnavailable},
		)
		assert.Equal(t, map[string]string{"status": "unavailable"}, decodeBody(t, body))
	})
}
