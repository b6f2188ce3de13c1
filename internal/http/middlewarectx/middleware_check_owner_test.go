package middlewarectx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
)

func TestOwnerMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		ctxEmail       any
		urlEmail       string
		expectedStatus int
		expectedBody   string
		expectNext     bool
	}{
		{
			name:           "email совпадает - доступ разрешён",
			ctxEmail:       "user@example.com",
			urlEmail:       "user@example.com",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "чужой email - доступ запрещён",
			ctxEmail:       "user@example.com",
			urlEmail:       "other@example.com",
			expectedStatus: http.StatusForbidden,
			expectedBody:   "forbidden access",
		},
		{
			name:           "нет email в контексте",
			ctxEmail:       nil,
			urlEmail:       "user@example.com",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "user identification missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/payments/"+tt.urlEmail, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("email", tt.urlEmail)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.ctxEmail != nil {
				ctx = context.WithValue(ctx, Email, tt.ctxEmail)
			}
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			OwnerMiddleware(newNoopLogger())(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
			if tt.expectedBody != "" {
				assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
					"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
			}
		})
	}
}
