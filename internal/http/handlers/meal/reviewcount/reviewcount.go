// Package reviewcount реализует HTTP-обработчик увеличения счётчика
// отзывов блюда.
package reviewcount

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/meal-aggregator/internal/http/response"
	"github.com/magabrotheeeer/meal-aggregator/internal/lib/sl"
)

// Handler обрабатывает запросы на увеличение счётчика отзывов.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики блюд
}

// Service описывает интерфейс бизнес-логики счётчика отзывов.
type Service interface {
	IncrementReviews(ctx context.Context, id string) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Увеличить счётчик отзывов блюда
// @Description Увеличивает счётчик отзывов блюда на единицу
// @Tags Meals
// @Produce  json
// @Param id path string true "ID блюда"
// @Success 200 {object} map[string]any "Количество обновлённых записей"
// @Failure 400 {object} response.ErrorResponse "Некорректный id"
// @Failure 404 {object} response.ErrorResponse "Блюдо не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /meals/{id}/review-count [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.meal.reviewcount"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	count, err := h.service.IncrementReviews(r.Context(), id)
	if err != nil {
		log.Error("failed to increment reviews counter", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not increment reviews counter"))
		return
	}
	if count == 0 {
		log.Error("meal not found", slog.String("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("meal not found"))
		return
	}

	log.Info("success to increment reviews counter", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"updated_count": count,
	}))
}
