package middlewarectx

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appjwt "github.com/magabrotheeeer/meal-aggregator/internal/lib/jwt"
)

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestJWTMiddleware(t *testing.T) {
	maker := appjwt.NewJWTMaker("test-secret", time.Hour)
	token, err := maker.GenerateToken("user@example.com", "testuser")
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "валидный токен пропускается дальше",
			authHeader:     "Bearer " + token,
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "отсутствующий заголовок",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "заголовок без префикса Bearer",
			authHeader:     token,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "мусор вместо токена",
			authHeader:     "Bearer garbage",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				// Контекст должен содержать данные из claims
				assert.Equal(t, "user@example.com", r.Context().Value(Email))
				assert.Equal(t, "testuser", r.Context().Value(User))
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/meals", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			JWTMiddleware(maker, newNoopLogger())(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
			if !tt.expectNext {
				assert.True(t, strings.Contains(w.Body.String(), "unauthorized access"),
					"response body should report unauthorized access, got %s", w.Body.String())
			}
		})
	}
}
