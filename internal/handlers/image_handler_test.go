// internal/handlers/image_handler_test.go
package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go_5_sentence_coach/internal/handlers"
	"go_5_sentence_coach/internal/model"
	"go_5_sentence_coach/internal/service/mocks"
)

func TestImageHandler_PostGenerateImage(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		setupMock      func(m *mocks.ScoringService)
		expectedStatus int
		expectedBody   map[string]string
	}{
		{
			name: "Success - 画像のみ返す",
			body: map[string]any{"level": 1, "user_sentence": "A dog.", "correct_words": []string{"dog"}},
			setupMock: func(m *mocks.ScoringService) {
				m.On("GenerateImage", mock.Anything, mock.MatchedBy(func(r *model.ImageRequest) bool {
					return r.UserSentence == "A dog." && r.LevelOrDefault() == 1
				})).Return(&model.ImageResult{ImageData: "aW1n", Score: model.ScoreRecord{TotalScore: 5}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]string{"image_data": "aW1n"},
		},
		{
			name: "Fail - 造句なし",
			body: map[string]any{"user_sentence": ""},
			setupMock: func(m *mocks.ScoringService) {
				m.On("GenerateImage", mock.Anything, mock.Anything).Return(nil, model.ErrNoSentence).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]string{"error": model.MsgNoSentence},
		},
		{
			name: "Fail - 画像生成失敗",
			body: map[string]any{"user_sentence": "A dog."},
			setupMock: func(m *mocks.ScoringService) {
				m.On("GenerateImage", mock.Anything, mock.Anything).Return(nil, model.ErrImageFailed).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]string{"error": model.MsgImageFailed},
		},
		{
			name: "Fail - 予期せぬエラー",
			body: map[string]any{"user_sentence": "A dog."},
			setupMock: func(m *mocks.ScoringService) {
				m.On("GenerateImage", mock.Anything, mock.Anything).Return(nil, errors.New("disk full")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]string{"error": model.MsgServerError},
		},
		{
			name:           "Fail - 不正なJSON",
			body:           `not json`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]string{"error": model.MsgInvalidRequest},
		},
		{
			name:           "Fail - 単語が多すぎる",
			body:           map[string]any{"user_sentence": "A dog.", "correct_words": make([]string, 21)},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]string{"error": "選擇的單字最多只能有20個。"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewScoringService(t)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}
			server := newTestServer(t, handlers.RouterDeps{Image: handlers.NewImageHandler(svc)})

			_, body := sendRequest(t, server,
				httpRequestDetails{Method: http.MethodPost, Path: "/api/generate_image", Body: tt.body},
				httpResponseExpectations{ExpectedCode: tt.expectedStatus},
			)

			assert.Equal(t, tt.expectedBody, decodeBody(t, body))
		})
	}
}
