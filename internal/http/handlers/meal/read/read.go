// Package read реализует HTTP-обработчик для получения конкретного блюда по ID.
//
// Handler извлекает ID из URL-параметров, вызывает бизнес-логику чтения
// и возвращает данные блюда в JSON-формате. Отсутствие блюда отражается
// статусом 404, а не пустым успешным ответом.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/meal-aggregator/internal/http/response"
	"github.com/magabrotheeeer/meal-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/meal-aggregator/internal/models"
	"github.com/magabrotheeeer/meal-aggregator/internal/storage/repository"
)

// Handler обрабатывает запросы на получение блюда по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики блюд
}

// Service описывает интерфейс бизнес-логики чтения блюда.
type Service interface {
	Read(ctx context.Context, id string) (*models.Meal, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить блюдо
// @Description Возвращает блюдо по ID
// @Tags Meals
// @Produce  json
// @Param id path string true "ID блюда"
// @Success 200 {object} map[string]any "Данные блюда"
// @Failure 400 {object} response.ErrorResponse "Некорректный id"
// @Failure 404 {object} response.ErrorResponse "Блюдо не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /meals/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.meal.read"
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

	meal, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("meal not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("meal not found"))
			return
		}
		log.Error("failed to read meal", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read meal"))
		return
	}

	log.Info("success to read meal", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"meal": meal,
	}))
}
