package read

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/meal-aggregator/internal/models"
	"github.com/magabrotheeeer/meal-aggregator/internal/storage/repository"
)

// MockService реализует интерфейс read.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Read(ctx context.Context, id string) (*models.Meal, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.Meal), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReadMealHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	const mealID = "7b8e9a10-1111-2222-3333-444455556666"

	tests := []struct {
		name           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное чтение блюда",
			id:   mealID,
			setupMock: func(m *MockService) {
				meal := &models.Meal{
					ID:       mealID,
					Name:     "Plov",
					Category: "lunch",
					Price:    12.5,
				}
				m.On("Read", mock.Anything, mealID).Return(meal, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Plov"`,
		},
		{
			name:           "некорректный id в URL",
			id:             "not-a-uuid",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "failed to decode id from url",
		},
		{
			name: "блюдо не найдено",
			id:   mealID,
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, mealID).Return(nil, repository.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "meal not found",
		},
		{
			name: "ошибка сервиса чтения",
			id:   mealID,
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, mealID).Return(nil, errors.New("db error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "could not read meal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/meals/"+tt.id, nil)
			// Устанавливаем URL params с помощью роутера chi
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
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
