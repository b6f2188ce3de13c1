// Package list реализует HTTP-обработчик получения будущего меню.
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

// Handler обрабатывает запросы на получение будущего меню.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики блюд
}

// Service описывает интерфейс бизнес-логики будущего меню.
type Service interface {
	ListUpcoming(ctx context.Context) ([]*models.UpcomingMeal, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить будущее меню
// @Description Возвращает блюда будущего меню, отсортированные по лайкам
// @Tags UpcomingMeals
// @Produce  json
// @Success 200 {object} map[string]any "Список блюд будущего меню"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /upcoming-meals [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.upcoming.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	meals, err := h.service.ListUpcoming(r.Context())
	if err != nil {
		log.Error("failed to list upcoming meals", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list upcoming meals"))
		return
	}

	log.Info("success to list upcoming meals", slog.Int("count", len(meals)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"upcoming_meals": meals,
	}))
}
