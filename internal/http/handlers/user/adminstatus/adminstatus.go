// Package adminstatus реализует HTTP-обработчик проверки роли администратора
// для собственной учётной записи пользователя.
package adminstatus

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/meal-aggregator/internal/http/response"
	"github.com/magabrotheeeer/meal-aggregator/internal/lib/sl"
)

// Handler обрабатывает запросы на проверку роли администратора.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики пользователей
}

// Service описывает интерфейс проверки роли пользователя.
type Service interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Проверить роль администратора
// @Description Возвращает {admin: bool} для собственного email пользователя
// @Tags Users
// @Produce  json
// @Param email path string true "Email пользователя"
// @Success 200 {object} map[string]any "Признак роли администратора"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Чужой email"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /users/admin/{email} [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.adminstatus"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := chi.URLParam(r, "email")
	isAdmin, err := h.service.IsAdmin(r.Context(), email)
	if err != nil {
		log.Error("failed to check admin role", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not check admin role"))
		return
	}

	log.Info("checked admin role", slog.String("email", email), slog.Bool("admin", isAdmin))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"admin": isAdmin,
	}))
}
