package list

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/meal-aggregator/internal/models"
)

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, userEmail string) ([]*models.MealRequest, error) {
	args := m.Called(ctx, userEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MealRequest), args.Error(1)
}

func TestMealRequestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		target         string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "параметр userEmail попадает в фильтр",
			target: "/meal-requests?userEmail=user@example.com",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "user@example.com").
					Return([]*models.MealRequest{
						{ID: "request-1", UserEmail: "user@example.com"},
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"request-1"`,
		},
		{
			name:   "без параметра возвращается весь список",
			target: "/meal-requests",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "").
					Return([]*models.MealRequest{}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"meal_requests"`,
		},
		{
			name:   "ошибка сервиса",
			target: "/meal-requests",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "").
					Return(nil, errors.New("db error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "could not list meal requests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
