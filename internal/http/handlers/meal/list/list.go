// Package list реализует HTTP-обработчик списка блюд с поиском по
// названию и сортировкой по цене.
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

// Handler обрабатывает запросы на получение списка блюд.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики блюд
}

// Service описывает интерфейс бизнес-логики списка блюд.
type Service interface {
	List(ctx context.Context, filter models.MealFilter) ([]*models.Meal, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список блюд
// @Description Возвращает блюда с поиском по названию (без учёта регистра) и сортировкой по цене
// @Tags Meals
// @Produce  json
// @Param search query string false "Подстрока названия"
// @Param sort query string false "Сортировка по цене: asc или desc"
// @Success 200 {object} map[string]any "Список блюд"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /meals [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.meal.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filter := models.MealFilter{
		Search:    r.URL.Query().Get("search"),
		PriceSort: r.URL.Query().Get("sort"),
	}

	meals, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.Error("failed to list meals", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list meals"))
		return
	}

	log.Info("success to list meals", slog.Int("count", len(meals)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"list_count": len(meals),
		"meals":      meals,
	}))
}
