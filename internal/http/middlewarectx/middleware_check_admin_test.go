package middlewarectx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) IsAdmin(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func TestAdminMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		ctxEmail       any
		setupMock      func(*MockAdminService)
		expectedStatus int
		expectedBody   string
		expectNext     bool
	}{
		{
			name:     "администратор - доступ разрешён",
			ctxEmail: "admin@example.com",
			setupMock: func(m *MockAdminService) {
				m.On("IsAdmin", mock.Anything, "admin@example.com").Return(true, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:     "обычный пользователь - доступ запрещён",
			ctxEmail: "user@example.com",
			setupMock: func(m *MockAdminService) {
				m.On("IsAdmin", mock.Anything, "user@example.com").Return(false, nil).Once()
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   "forbidden access",
		},
		{
			name:           "нет email в контексте",
			ctxEmail:       nil,
			setupMock:      func(_ *MockAdminService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "user identification missing",
		},
		{
			name:     "ошибка проверки роли",
			ctxEmail: "user@example.com",
			setupMock: func(m *MockAdminService) {
				m.On("IsAdmin", mock.Anything, "user@example.com").
					Return(false, errors.New("db error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "internal service error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAdminService)
			tt.setupMock(mockService)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			if tt.ctxEmail != nil {
				req = req.WithContext(context.WithValue(req.Context(), Email, tt.ctxEmail))
			}
			w := httptest.NewRecorder()

			AdminMiddleware(newNoopLogger(), mockService)(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
			if tt.expectedBody != "" {
				assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
					"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
			}

			mockService.AssertExpectations(t)
		})
	}
}
