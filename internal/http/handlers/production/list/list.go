// Package list реализует HTTP-обработчик получения производственного
// списка кухни.
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

// Handler обрабатывает запросы на получение производственного списка.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики блюд
}

// Service описывает интерфейс бизнес-логики производственного списка.
type Service interface {
	ListProduction(ctx context.Context) ([]*models.ProductionMeal, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить производственный список
// @Description Возвращает все блюда производственного списка кухни
// @Tags ProductionMeals
// @Produce  json
// @Success 200 {object} map[string]any "Производственный список"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /production-meals [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.production.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	meals, err := h.service.ListProduction(r.Context())
	if err != nil {
		log.Error("failed to list production meals", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list production meals"))
		return
	}

	log.Info("success to list production meals", slog.Int("count", len(meals)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"production_meals": meals,
	}))
}
