// Package middlewarectx содержит HTTP middleware для допуска запросов:
// проверку JWT токена, проверку владельца ресурса и проверку роли
// администратора.
//
// Проверки применяются цепочкой и закорачиваются: первая неуспешная
// формирует терминальный ответ, последующие не выполняются. Ни одна
// проверка после аутентификации не запускается без валидного токена.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	appjwt "github.com/magabrotheeeer/meal-aggregator/internal/lib/jwt"
	"github.com/magabrotheeeer/meal-aggregator/internal/http/response"
	"github.com/magabrotheeeer/meal-aggregator/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// Email — ключ для электронной почты пользователя в контексте
	Email Key = "email"
	// User — ключ для имени пользователя в контексте
	User Key = "username"
)

// TokenParser описывает интерфейс сервиса для разбора JWT токена.
type TokenParser interface {
	ParseToken(tokenStr string) (*appjwt.CustomClaims, error)
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
//
// Если токен валиден, добавляет email и имя пользователя в контекст запроса,
// иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func JWTMiddleware(maker TokenParser, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized access"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := maker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized access"))
				return
			}
			ctx := context.WithValue(r.Context(), Email, claims.Email)
			ctx = context.WithValue(ctx, User, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
