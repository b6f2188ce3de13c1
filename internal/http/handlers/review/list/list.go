// Package list реализует HTTP-обработчик получения списка отзывов.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/meal-aggregator/internal/http/response"
	"github.com/magabrotheeeer/meal-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/meal-aggregator/internal/models"
)

// Handler обрабатывает запросы на получение списка отзывов.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики отзывов
}

// Service описывает интерфейс бизнес-логики отзывов.
type Service interface {
	List(ctx context.Context, filter models.ReviewFilter) ([]*models.Review, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить список отзывов
// @Description Возвращает отзывы, опционально отфильтрованные по автору и названию блюда
// @Tags Reviews
// @Produce  json
// @Param userEmail query string false "Почта автора"
// @Param title query string false "Название блюда"
// @Success 200 {object} map[string]any "Список отзывов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /reviews [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.review.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filter := models.ReviewFilter{
		UserEmail: r.URL.Query().Get("userEmail"),
		Title:     r.URL.Query().Get("title"),
	}

	reviews, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.Error("failed to list reviews", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list reviews"))
		return
	}

	log.Info("success to list reviews", slog.Int("count", len(reviews)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"reviews": reviews,
	}))
}
