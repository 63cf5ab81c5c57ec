// internal/service/feedback_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"go_5_sentence_coach/internal/ai"
	"go_5_sentence_coach/internal/middleware"
	"go_5_sentence_coach/internal/model"
	"go_5_sentence_coach/internal/repository"
)

// TimestampLayout はログ行の timestamp 列の形式です。
const TimestampLayout = "2006-01-02 15:04:05"

// FeedbackComposer は講評プロンプトを組み立てて AI に送り、表示用の三段落形式に整えます。
type FeedbackComposer struct {
	completer ai.TextCompleter
}

func NewFeedbackComposer(completer ai.TextCompleter) *FeedbackComposer {
	return &FeedbackComposer{completer: completer}
}

// Compose は「状態メッセージ + 空行 + 講評」を返します。
// AI 呼び出しが失敗した場合は講評の代わりに固定の失敗メッセージが入ります。
func (c *FeedbackComposer) Compose(ctx context.Context, userSentence string, p model.WordPartition, targetAnswers []string, sentencePrompt string) string {
	logger := middleware.GetLogger(ctx)

	status := model.MsgStillUndiscovered
	if p.AllFound() {
		status = model.MsgAllFound
	}

	prompt := BuildFeedbackPrompt(FeedbackPromptInput{
		TargetAnswers:   targetAnswers,
		CorrectSelected: p.CorrectSelected,
		WrongSelected:   p.WrongSelected,
		MissingWords:    p.MissingWords,
		UserSentence:    userSentence,
		SentencePrompt:  sentencePrompt,
	})

	completion := c.completer.Complete(ctx, prompt, FeedbackSystemInstruction)
	if !completion.OK() {
		logger.Warn("Feedback completion degraded",
			slog.String("status", completion.Status.String()),
			slog.Int("attempts", completion.Attempts),
			slog.Any("error", completion.Err),
		)
	}

	return status + "\n\n" + FormatCritique(completion.Message())
}

// FeedbackService は POST /api/ai_feedback の処理を行います。
type FeedbackService interface {
	// GiveFeedback は講評文を返します。造句が空の場合は入力を促すメッセージを返し、
	// AI 呼び出しもログ記録も行いません。
	GiveFeedback(ctx context.Context, req *model.FeedbackRequest) (string, error)
}

type feedbackService struct {
	levelRepo    repository.LevelRepository
	activityRepo repository.ActivityLogRepository
	composer     *FeedbackComposer
	now          func() time.Time
}

func NewFeedbackService(levelRepo repository.LevelRepository, activityRepo repository.ActivityLogRepository, completer ai.TextCompleter) FeedbackService {
	return &feedbackService{
		levelRepo:    levelRepo,
		activityRepo: activityRepo,
		composer:     NewFeedbackComposer(completer),
		now:          time.Now,
	}
}

func (s *feedbackService) GiveFeedback(ctx context.Context, req *model.FeedbackRequest) (string, error) {
	level := req.LevelOrDefault()
	logger := middleware.GetLogger(ctx).With(slog.Int("level", level))

	def, err := s.levelRepo.FindByLevel(ctx, level)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Level not found")
			return "", model.ErrLevelNotFound
		}
		logger.Error("Failed to load level data", slog.Any("error", err))
		return "", err
	}

	sentence := strings.TrimSpace(req.UserSentence)
	if sentence == "" {
		return model.MsgEnterSentence, nil
	}

	partition := PartitionWords(req.CorrectWords, def.Answer)
	feedback := s.composer.Compose(ctx, sentence, partition, def.Answer, strings.TrimSpace(req.SentencePrompt))

	row := (&model.ActivityLogRow{
		Timestamp:     s.now().Format(TimestampLayout),
		Level:         strconv.Itoa(level),
		FeedbackRound: fmt.Sprintf("第%d次回饋", req.FeedbackCount+1),
		SelectedWords: joinWords(req.CorrectWords),
		Accuracy:      FormatAccuracy(len(partition.CorrectSelected)),
		UserSentence:  sentence,
		AIFeedback:    strings.ReplaceAll(feedback, "\n", " "),
	}).WithoutScores()
	s.activityRepo.Append(ctx, row)

	logger.Info("Feedback generated",
		slog.Int("correct", len(partition.CorrectSelected)),
		slog.Int("wrong", len(partition.WrongSelected)),
		slog.Int("missing", len(partition.MissingWords)),
	)
	return feedback, nil
}
