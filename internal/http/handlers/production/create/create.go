// Package create реализует HTTP-обработчик публикации блюда
// в производственный список кухни.
package create

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/meal-aggregator/internal/http/response"
	"github.com/magabrotheeeer/meal-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/meal-aggregator/internal/models"
)

// Handler обрабатывает запросы на публикацию блюда в производственный список.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики блюд
	validate *validator.Validate // Валидатор входных данных
}

// Service описывает интерфейс бизнес-логики производственного списка.
type Service interface {
	AddToProduction(ctx context.Context, req models.DummyMeal) (string, []*models.ProductionMeal, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Опубликовать блюдо в производственный список
// @Description Добавляет блюдо в производственный список кухни и возвращает обновлённый список
// @Tags ProductionMeals
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body models.DummyMeal true "Данные блюда"
// @Success 200 {object} map[string]any "ID записи и актуальный список"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /production-meals [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.production.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyMeal
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode request"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		validateErrs := err.(validator.ValidationErrors)
		log.Error("invalid request", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(validateErrs))
		return
	}

	id, meals, err := h.service.AddToProduction(r.Context(), req)
	if err != nil {
		log.Error("failed to add meal to production", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not add meal to production"))
		return
	}

	log.Info("success to add meal to production", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"inserted_id":      id,
		"production_meals": meals,
	}))
}
