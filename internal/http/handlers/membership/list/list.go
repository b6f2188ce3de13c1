// Package list реализует HTTP-обработчик получения тарифных планов.
// Обработчик обслуживает и список планов целиком, и выборку
// конкретного плана по имени из URL.
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

// Handler обрабатывает запросы на получение тарифных планов.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики тарифных планов
}

// Service описывает интерфейс бизнес-логики тарифных планов.
type Service interface {
	List(ctx context.Context, planName string) ([]*models.MembershipPlan, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить тарифные планы
// @Description Возвращает тарифные планы, опционально отфильтрованные по имени плана
// @Tags MembershipPlans
// @Produce  json
// @Param name path string false "Имя плана"
// @Success 200 {object} map[string]any "Список тарифных планов"
// @Failure 404 {object} response.ErrorResponse "План не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /plans [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.membership.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	planName := chi.URLParam(r, "name")

	plans, err := h.service.List(r.Context(), planName)
	if err != nil {
		log.Error("failed to list membership plans", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list membership plans"))
		return
	}
	if planName != "" && len(plans) == 0 {
		log.Error("membership plan not found", slog.String("name", planName))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("membership plan not found"))
		return
	}

	log.Info("success to list membership plans", slog.Int("count", len(plans)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"membership_plans": plans,
	}))
}
