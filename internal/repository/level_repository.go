// internal/repository/level_repository.go
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"go_5_sentence_coach/internal/model"
)

// LevelRepository は関卡定義を取得します。
type LevelRepository interface {
	FindByLevel(ctx context.Context, level int) (*model.LevelDefinition, error)
	// Ping はリソースが読み込めるか確認します (ヘルスチェック用)。
	Ping(ctx context.Context) error
}

type jsonLevelRepository struct {
	path   string
	logger *slog.Logger
}

// NewJSONLevelRepository は JSONファイル ([{level, answer[]}...]) を読むリポジトリを作成します。
// キャッシュはせず、呼び出し毎にファイルを読み直します。
func NewJSONLevelRepository(path string, logger *slog.Logger) LevelRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &jsonLevelRepository{
		path:   path,
		logger: logger.With(slog.String("repository", "level"), slog.String("path", path)),
	}
}

func (r *jsonLevelRepository) FindByLevel(ctx context.Context, level int) (*model.LevelDefinition, error) {
	levels, err := r.load()
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to load level definitions", slog.Any("error", err))
		return nil, err
	}

	for i := range levels {
		if levels[i].Level == level {
			return &levels[i], nil
		}
	}
	r.logger.DebugContext(ctx, "Level not found", slog.Int("level", level))
	return nil, model.ErrNotFound
}

func (r *jsonLevelRepository) Ping(ctx context.Context) error {
	_, err := r.load()
	return err
}

func (r *jsonLevelRepository) load() ([]model.LevelDefinition, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open level data: %v", model.ErrInternalServer, err)
	}
	defer f.Close()

	var levels []model.LevelDefinition
	if err := json.NewDecoder(f).Decode(&levels); err != nil {
		return nil, fmt.Errorf("%w: decode level data: %v", model.ErrInternalServer, err)
	}
	return levels, nil
}
