package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/meal-aggregator/internal/http/response"
	"github.com/magabrotheeeer/meal-aggregator/internal/lib/sl"
)

// AdminService определяет интерфейс для проверки роли пользователя.
type AdminService interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// AdminMiddleware создает middleware для проверки роли администратора.
//
// Роль берётся из хранилища пользователей по email из контекста, а не из
// токена. Пользователь без роли admin получает 403 Forbidden.
func AdminMiddleware(log *slog.Logger, userService AdminService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := r.Context().Value(Email).(string)
			if !ok || email == "" {
				log.Error("user identification missing")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user identification missing"))
				return
			}

			isAdmin, err := userService.IsAdmin(r.Context(), email)
			if err != nil {
				log.Error("failed to check admin role", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal service error"))
				return
			}

			if !isAdmin {
				log.Error("admin role required, access denied", slog.String("email", email))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error("forbidden access"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
