// internal/repository/activity_log_repository.go
package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"go_5_sentence_coach/internal/model"
)

// ActivityLogRepository は学習記録を追記専用のログに書き出します。
// 書き込みに失敗しても呼び出し元にはエラーを返さず、ログに出力するだけです。
type ActivityLogRepository interface {
	Append(ctx context.Context, row *model.ActivityLogRow)
}

type csvActivityLogRepository struct {
	mu     sync.Mutex // 同時リクエストの行が混ざらないように書き込みを直列化する
	path   string
	logger *slog.Logger
}

// NewCSVActivityLogRepository は CSVファイルへ追記するリポジトリを作成します。
// ファイルが存在しない時だけ BOM 付きでヘッダー行を書きます。
func NewCSVActivityLogRepository(path string, logger *slog.Logger) ActivityLogRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &csvActivityLogRepository{
		path:   path,
		logger: logger.With(slog.String("repository", "activity_log"), slog.String("path", path)),
	}
}

func (r *csvActivityLogRepository) Append(ctx context.Context, row *model.ActivityLogRow) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.appendLocked(row); err != nil {
		r.logger.ErrorContext(ctx, "CSV 寫入失敗", slog.Any("error", err))
		return
	}
	r.logger.DebugContext(ctx, "Activity row appended", slog.String("level", row.Level))
}

func (r *csvActivityLogRepository) appendLocked(row *model.ActivityLogRow) (err error) {
	_, statErr := os.Stat(r.path)
	isNew := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open activity log: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close activity log: %w", cerr)
		}
	}()

	var w io.Writer = f
	var bom *transform.Writer
	if isNew {
		bom = transform.NewWriter(f, unicode.UTF8BOM.NewEncoder())
		w = bom
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if isNew {
		if err := cw.Write(model.ActivityLogColumns); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if err := cw.Write(row.Record()); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush row: %w", err)
	}

	if bom != nil {
		if err := bom.Close(); err != nil {
			return fmt.Errorf("flush BOM writer: %w", err)
		}
	}
	return nil
}
