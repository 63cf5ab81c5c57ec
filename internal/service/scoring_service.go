// internal/service/scoring_service.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"go_5_sentence_coach/internal/ai"
	"go_5_sentence_coach/internal/middleware"
	"go_5_sentence_coach/internal/model"
	"go_5_sentence_coach/internal/repository"
)

// ScoringComposer は単語・造句・画像の三つの点数を計算します。
type ScoringComposer struct {
	completer ai.TextCompleter
}

func NewScoringComposer(completer ai.TextCompleter) *ScoringComposer {
	return &ScoringComposer{completer: completer}
}

// Score は単語点 (一致数) と AI による造句点・画像点を合計します。
// AI の応答が解析できない場合、造句点と画像点は 0 になります。
func (c *ScoringComposer) Score(ctx context.Context, levelAnswers, selectedWords []string, userSentence string) model.ScoreRecord {
	logger := middleware.GetLogger(ctx)

	record := model.ScoreRecord{WordScore: CountCorrect(selectedWords, levelAnswers)}

	completion := c.completer.Complete(ctx, BuildGradingPrompt(levelAnswers, userSentence), GradingSystemInstruction)
	if completion.OK() {
		var ok bool
		record.SentenceScore, record.ImageScore, ok = ParseGrading(completion.Text)
		if !ok {
			logger.Warn("Grading response could not be parsed, defaulting to zero", slog.String("response", completion.Text))
		}
	} else {
		logger.Warn("Grading completion degraded, defaulting to zero",
			slog.String("status", completion.Status.String()),
			slog.Any("error", completion.Err),
		)
	}

	record.TotalScore = record.WordScore + record.SentenceScore + record.ImageScore
	return record
}

// ScoringService は POST /api/generate_image の処理を行います。
type ScoringService interface {
	GenerateImage(ctx context.Context, req *model.ImageRequest) (*model.ImageResult, error)
}

type scoringService struct {
	levelRepo    repository.LevelRepository
	activityRepo repository.ActivityLogRepository
	images       ai.ImageGenerator
	composer     *ScoringComposer
	now          func() time.Time
}

func NewScoringService(levelRepo repository.LevelRepository, activityRepo repository.ActivityLogRepository, images ai.ImageGenerator, completer ai.TextCompleter) ScoringService {
	return &scoringService{
		levelRepo:    levelRepo,
		activityRepo: activityRepo,
		images:       images,
		composer:     NewScoringComposer(completer),
		now:          time.Now,
	}
}

func (s *scoringService) GenerateImage(ctx context.Context, req *model.ImageRequest) (*model.ImageResult, error) {
	level := req.LevelOrDefault()
	logger := middleware.GetLogger(ctx).With(slog.Int("level", level))

	sentence := strings.TrimSpace(req.UserSentence)
	if sentence == "" {
		return nil, model.ErrNoSentence
	}

	image, err := s.images.GenerateImage(ctx, sentence)
	if err != nil || image == "" {
		logger.Warn("Image generation failed", slog.Any("error", err))
		return nil, model.ErrImageFailed
	}

	// 採点フローでは関卡が見つからなくてもエラーにせず、正解セットを空として扱う
	var answers []string
	def, err := s.levelRepo.FindByLevel(ctx, level)
	switch {
	case err == nil:
		answers = def.Answer
	case errors.Is(err, model.ErrNotFound):
		logger.Info("Level not found, scoring against an empty answer set")
	default:
		logger.Error("Failed to load level data", slog.Any("error", err))
		return nil, err
	}

	score := s.composer.Score(ctx, answers, req.CorrectWords, sentence)

	row := (&model.ActivityLogRow{
		Timestamp:     s.now().Format(TimestampLayout),
		Level:         strconv.Itoa(level),
		FeedbackRound: model.NotApplicable,
		SelectedWords: joinWords(req.CorrectWords),
		Accuracy:      FormatAccuracy(score.WordScore),
		UserSentence:  sentence,
		AIFeedback:    model.NotApplicable,
	}).WithScores(score)
	s.activityRepo.Append(ctx, row)

	logger.Info("Image generated and scored",
		slog.Int("word_score", score.WordScore),
		slog.Int("sentence_score", score.SentenceScore),
		slog.Int("image_score", score.ImageScore),
		slog.Int("total_score", score.TotalScore),
	)
	return &model.ImageResult{ImageData: image, Score: score}, nil
}
