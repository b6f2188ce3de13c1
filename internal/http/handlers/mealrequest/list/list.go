// Package list реализует HTTP-обработчик получения заявок на выдачу блюд.
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

// Handler обрабатывает запросы на получение списка заявок.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики заявок
}

// Service описывает интерфейс бизнес-логики заявок.
type Service interface {
	List(ctx context.Context, userEmail string) ([]*models.MealRequest, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить список заявок
// @Description Возвращает заявки на выдачу блюд, опционально отфильтрованные по почте заказчика
// @Tags MealRequests
// @Security BearerAuth
// @Produce  json
// @Param userEmail query string false "Почта заказчика"
// @Success 200 {object} map[string]any "Список заявок"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /meal-requests [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.mealrequest.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userEmail := r.URL.Query().Get("userEmail")

	requests, err := h.service.List(r.Context(), userEmail)
	if err != nil {
		log.Error("failed to list meal requests", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list meal requests"))
		return
	}

	log.Info("success to list meal requests", slog.Int("count", len(requests)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"meal_requests": requests,
	}))
}
