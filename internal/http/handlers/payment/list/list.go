// Package list реализует HTTP-обработчик получения платежей пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/meal-aggregator/internal/http/response"
	"github.com/magabrotheeeer/meal-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/meal-aggregator/internal/models"
)

// Handler обрабатывает запросы на получение платежей пользователя.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики платежей
}

// Service описывает интерфейс бизнес-логики платежей.
type Service interface {
	ListByEmail(ctx context.Context, email string) ([]*models.Payment, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить платежи пользователя
// @Description Возвращает историю платежей пользователя, доступно только владельцу
// @Tags Payments
// @Security BearerAuth
// @Produce  json
// @Param email path string true "Почта пользователя"
// @Success 200 {object} map[string]any "Список платежей"
// @Failure 403 {object} response.ErrorResponse "Доступ запрещён"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /payments/{email} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := chi.URLParam(r, "email")

	payments, err := h.service.ListByEmail(r.Context(), email)
	if err != nil {
		log.Error("failed to list payments", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list payments"))
		return
	}

	log.Info("success to list payments",
		slog.String("email", email), slog.Int("count", len(payments)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"payments": payments,
	}))
}
