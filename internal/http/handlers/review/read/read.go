// Package read реализует HTTP-обработчик получения отзыва по ID.
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

// Handler обрабатывает запросы на чтение отзыва.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики отзывов
}

// Service описывает интерфейс бизнес-логики отзывов.
type Service interface {
	Read(ctx context.Context, id string) (*models.Review, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить отзыв
// @Description Возвращает отзыв по его идентификатору
// @Tags Reviews
// @Produce  json
// @Param id path string true "ID отзыва"
// @Success 200 {object} map[string]any "Отзыв"
// @Failure 400 {object} response.ErrorResponse "Некорректный id"
// @Failure 404 {object} response.ErrorResponse "Отзыв не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /reviews/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.review.read"
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

	review, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("review not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("review not found"))
			return
		}
		log.Error("failed to read review", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read review"))
		return
	}

	log.Info("success to read review", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"review": review,
	}))
}
