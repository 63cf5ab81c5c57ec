package repository

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_5_sentence_coach/internal/model"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func readActivityLog(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, utf8BOM), "ファイル先頭に BOM があるはず")

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM))).ReadAll()
	require.NoError(t, err)
	return records
}

func sampleRow(sentence string) *model.ActivityLogRow {
	return (&model.ActivityLogRow{
		Timestamp:     "2026-10-15 09:30:00",
		Level:         "1",
		FeedbackRound: "第1次回饋",
		SelectedWords: "duck,cat",
		Accuracy:      "0.330000",
		UserSentence:  sentence,
		AIFeedback:    "⚠️ 圖片裡還有一些東西你沒發現喔！ 1. 單字提示",
	}).WithoutScores()
}

func TestCSVActivityLogRepository_Append(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "record.csv")
	repo := NewCSVActivityLogRepository(path, nil)

	repo.Append(ctx, sampleRow("A duck, in the pond."))
	repo.Append(ctx, (&model.ActivityLogRow{
		Timestamp:     "2026-10-15 09:31:00",
		Level:         "1",
		FeedbackRound: model.NotApplicable,
		SelectedWords: "duck",
		Accuracy:      "0.330000",
		UserSentence:  "A duck.",
		AIFeedback:    model.NotApplicable,
	}).WithScores(model.ScoreRecord{WordScore: 1, SentenceScore: 3, ImageScore: 2, TotalScore: 6}))

	records := readActivityLog(t, path)
	require.Len(t, records, 3, "ヘッダー1行 + データ2行")

	assert.Equal(t, model.ActivityLogColumns, records[0])
	assert.Equal(t, "A duck, in the pond.", records[1][5], "カンマを含む文もそのまま復元できる")
	assert.Equal(t, []string{"nan", "nan", "nan", "nan"}, records[1][7:])
	assert.Equal(t, []string{"1", "3", "2", "6"}, records[2][7:])
	assert.Equal(t, model.NotApplicable, records[2][2])
	for _, rec := range records {
		assert.Len(t, rec, len(model.ActivityLogColumns))
		for _, v := range rec {
			assert.NotEmpty(t, v)
		}
	}

	// ヘッダーとBOMは最初の1回だけ
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, bytes.Count(data, utf8BOM))
	assert.Equal(t, 1, bytes.Count(data, []byte("timestamp,level")))
}

func TestCSVActivityLogRepository_AppendsUnderExistingHeader(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "record.csv")

	NewCSVActivityLogRepository(path, nil).Append(ctx, sampleRow("first"))
	// 別インスタンス (再起動相当) でも既存ヘッダーの下に追記する
	NewCSVActivityLogRepository(path, nil).Append(ctx, sampleRow("second"))

	records := readActivityLog(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, "first", records[1][5])
	assert.Equal(t, "second", records[2][5])
}

func TestCSVActivityLogRepository_ConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "record.csv")
	repo := NewCSVActivityLogRepository(path, nil)

	const writers = 40
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			repo.Append(ctx, sampleRow(fmt.Sprintf("sentence %d", i)))
		}(i)
	}
	wg.Wait()

	records := readActivityLog(t, path)
	require.Len(t, records, writers+1)
	for _, rec := range records[1:] {
		assert.Len(t, rec, len(model.ActivityLogColumns))
	}
}

func TestCSVActivityLogRepository_WriteFailureIsSwallowed(t *testing.T) {
	// ディレクトリが存在しないパスでも panic や error にならない
	repo := NewCSVActivityLogRepository(filepath.Join(t.TempDir(), "missing", "record.csv"), nil)
	assert.NotPanics(t, func() {
		repo.Append(context.Background(), sampleRow("lost"))
	})
}
