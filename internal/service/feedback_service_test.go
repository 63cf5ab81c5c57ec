package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"go_5_sentence_coach/internal/ai"
	aimocks "go_5_sentence_coach/internal/ai/mocks"
	"go_5_sentence_coach/internal/model"
	repomocks "go_5_sentence_coach/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 10, 1, 9, 30, 5, 0, time.Local)

func levelOne() *model.LevelDefinition {
	return &model.LevelDefinition{Level: 1, Answer: []string{"dog", "Ball", "tree"}}
}

func intPtr(i int) *int { return &i }

func newTestFeedbackService(t *testing.T) (*feedbackService, *repomocks.LevelRepository, *repomocks.ActivityLogRepository, *aimocks.TextCompleter) {
	levelRepo := repomocks.NewLevelRepository(t)
	activityRepo := repomocks.NewActivityLogRepository(t)
	completer := aimocks.NewTextCompleter(t)
	s := NewFeedbackService(levelRepo, activityRepo, completer).(*feedbackService)
	s.now = func() time.Time { return fixedNow }
	return s, levelRepo, activityRepo, completer
}

func Test_feedbackService_GiveFeedback(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 一部正解なら未発見メッセージと講評を返し、1行記録する", func(t *testing.T) {
		s, levelRepo, activityRepo, completer := newTestFeedbackService(t)
		levelRepo.On("FindByLevel", ctx, 1).Return(levelOne(), nil).Once()
		completer.On("Complete", ctx, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, "The dog plays.") && strings.Contains(p, "tree")
		}), FeedbackSystemInstruction).
			Return(ai.Completion{Status: ai.StatusOK, Text: "1. 很好。 2. 注意時態。 3. 加上 tree。", Attempts: 1}).Once()

		var logged *model.ActivityLogRow
		activityRepo.On("Append", ctx, mock.Anything).Run(func(args mock.Arguments) {
			logged = args.Get(1).(*model.ActivityLogRow)
		}).Once()

		req := &model.FeedbackRequest{
			Level:         intPtr(1),
			UserSentence:  "  The dog plays.  ",
			CorrectWords:  []string{"DOG", "cat"},
			FeedbackCount: 1,
		}
		got, err := s.GiveFeedback(ctx, req)

		require.NoError(t, err)
		want := model.MsgStillUndiscovered + "\n\n1. 很好。\n\n2. 注意時態。\n\n3. 加上 tree。"
		assert.Equal(t, want, got)

		require.NotNil(t, logged)
		assert.Equal(t, []string{
			"2025-10-01 09:30:05", "1", "第2次回饋", "DOG,cat", "0.330000",
			"The dog plays.", strings.ReplaceAll(want, "\n", " "),
			"nan", "nan", "nan", "nan",
		}, logged.Record())
	})

	t.Run("正常系: 全部見つけたら称賛メッセージ、level 未指定は 1", func(t *testing.T) {
		s, levelRepo, activityRepo, completer := newTestFeedbackService(t)
		levelRepo.On("FindByLevel", ctx, model.DefaultLevel).Return(levelOne(), nil).Once()
		completer.On("Complete", ctx, mock.Anything, FeedbackSystemInstruction).
			Return(ai.Completion{Status: ai.StatusOK, Text: "1. 完美。", Attempts: 1}).Once()
		activityRepo.On("Append", ctx, mock.MatchedBy(func(r *model.ActivityLogRow) bool {
			return r.Accuracy == "1.000000" && r.FeedbackRound == "第1次回饋"
		})).Once()

		got, err := s.GiveFeedback(ctx, &model.FeedbackRequest{
			UserSentence: "A dog under a tree with a ball.",
			CorrectWords: []string{"dog", "ball", "TREE"},
		})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, model.MsgAllFound+"\n\n"))
	})

	t.Run("造句が空なら AI もログも呼ばない", func(t *testing.T) {
		s, levelRepo, _, _ := newTestFeedbackService(t)
		levelRepo.On("FindByLevel", ctx, 1).Return(levelOne(), nil).Once()

		got, err := s.GiveFeedback(ctx, &model.FeedbackRequest{Level: intPtr(1), UserSentence: " \t\n"})

		require.NoError(t, err)
		assert.Equal(t, model.MsgEnterSentence, got)
	})

	t.Run("存在しない関卡は ErrLevelNotFound", func(t *testing.T) {
		s, levelRepo, _, _ := newTestFeedbackService(t)
		levelRepo.On("FindByLevel", ctx, 99).Return(nil, fmt.Errorf("level 99: %w", model.ErrNotFound)).Once()

		_, err := s.GiveFeedback(ctx, &model.FeedbackRequest{Level: intPtr(99), UserSentence: "Hi."})

		assert.ErrorIs(t, err, model.ErrLevelNotFound)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("関卡データが読めない場合はそのまま返す", func(t *testing.T) {
		s, levelRepo, _, _ := newTestFeedbackService(t)
		repoErr := fmt.Errorf("read levels: %w", model.ErrInternalServer)
		levelRepo.On("FindByLevel", ctx, 1).Return(nil, repoErr).Once()

		_, err := s.GiveFeedback(ctx, &model.FeedbackRequest{UserSentence: "Hi."})

		assert.ErrorIs(t, err, model.ErrInternalServer)
		assert.False(t, errors.Is(err, model.ErrInvalidInput))
	})

	t.Run("AI 失敗時も固定メッセージで応答し記録する", func(t *testing.T) {
		s, levelRepo, activityRepo, completer := newTestFeedbackService(t)
		levelRepo.On("FindByLevel", ctx, 1).Return(levelOne(), nil).Once()
		completer.On("Complete", ctx, mock.Anything, FeedbackSystemInstruction).
			Return(ai.Completion{Status: ai.StatusRateLimited, Attempts: 3}).Once()
		activityRepo.On("Append", ctx, mock.MatchedBy(func(r *model.ActivityLogRow) bool {
			return strings.HasSuffix(r.AIFeedback, ai.MsgUnavailable) && r.SelectedWords == "nan"
		})).Once()

		got, err := s.GiveFeedback(ctx, &model.FeedbackRequest{UserSentence: "Hi."})

		require.NoError(t, err)
		assert.Equal(t, model.MsgStillUndiscovered+"\n\n"+ai.MsgUnavailable, got)
	})
}
