package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/meal-aggregator/internal/http/response"
)

// OwnerMiddleware создает middleware для проверки, что email из URL
// совпадает с email аутентифицированного пользователя.
//
// Применяется к конечным точкам, возвращающим данные конкретного
// пользователя. Несовпадение всегда даёт 403 Forbidden.
func OwnerMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := r.Context().Value(Email).(string)
			if !ok || email == "" {
				log.Error("user identification missing")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user identification missing"))
				return
			}

			if chi.URLParam(r, "email") != email {
				log.Error("email mismatch, access denied",
					slog.String("requested", chi.URLParam(r, "email")))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error("forbidden access"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
