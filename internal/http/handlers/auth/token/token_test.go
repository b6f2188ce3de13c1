package token

import (
	"encoding/json"
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

func TestTokenHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	maker := appjwt.NewJWTMaker("test-secret", 7*time.Hour)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "успешный выпуск токена",
			body:           `{"email":"user@example.com","username":"testuser"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"token":"`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"email":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid request body",
		},
		{
			name:           "невалидный email",
			body:           `{"email":"not-an-email","username":"testuser"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "field Email must be a valid email",
		},
		{
			name:           "отсутствует username",
			body:           `{"email":"user@example.com"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "field Username is a required field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := New(logger, maker)

			req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
		})
	}
}

func TestTokenHandler_IssuedTokenIsValid(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	maker := appjwt.NewJWTMaker("test-secret", 7*time.Hour)

	handler := New(logger, maker)

	req := httptest.NewRequest(http.MethodPost, "/jwt",
		strings.NewReader(`{"email":"user@example.com","username":"testuser"}`))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)

	// Выпущенный токен проходит проверку и содержит исходные данные
	claims, err := maker.ParseToken(resp.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "testuser", claims.Username)
}
