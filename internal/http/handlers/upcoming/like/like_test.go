package like

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/meal-aggregator/internal/storage/repository"
)

// MockService реализует интерфейс like.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ToggleUpcomingLike(ctx context.Context, id, userUID string, liked bool) (int, error) {
	args := m.Called(ctx, id, userUID, liked)
	return args.Int(0), args.Error(1)
}

func TestUpcomingLikeHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	const mealID = "b2c8a1de-4f6a-4f4e-9f6a-2f1f7f4b9a10"
	const userUID = "7f4cfa61-9f3b-4b49-a3d1-6a0a2f9d1c55"

	tests := []struct {
		name           string
		mealID         string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "лайк поставлен",
			mealID: mealID,
			body:   fmt.Sprintf(`{"user_uid":%q,"liked":false}`, userUID),
			setupMock: func(m *MockService) {
				m.On("ToggleUpcomingLike", mock.Anything, mealID, userUID, false).
					Return(5, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"likes":5`,
		},
		{
			name:   "блюдо не найдено",
			mealID: mealID,
			body:   fmt.Sprintf(`{"user_uid":%q,"liked":false}`, userUID),
			setupMock: func(m *MockService) {
				m.On("ToggleUpcomingLike", mock.Anything, mealID, userUID, false).
					Return(0, fmt.Errorf("op: %w", repository.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "upcoming meal not found",
		},
		{
			name:           "некорректный id в url",
			mealID:         "not-a-uuid",
			body:           fmt.Sprintf(`{"user_uid":%q,"liked":false}`, userUID),
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "failed to decode id from url",
		},
		{
			name:           "некорректный uid пользователя",
			mealID:         mealID,
			body:           `{"user_uid":"not-a-uuid","liked":false}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "field UserUID",
		},
		{
			name:   "ошибка сервиса",
			mealID: mealID,
			body:   fmt.Sprintf(`{"user_uid":%q,"liked":true}`, userUID),
			setupMock: func(m *MockService) {
				m.On("ToggleUpcomingLike", mock.Anything, mealID, userUID, true).
					Return(0, errors.New("db error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "could not toggle like",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPatch,
				"/upcoming-meals/"+tt.mealID+"/likes", strings.NewReader(tt.body))

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.mealID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
