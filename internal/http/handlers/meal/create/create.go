// Package create реализует HTTP-обработчик для добавления новых блюд
// в каталог.
//
// Handler принимает JSON-запрос с данными блюда, валидирует их, вызывает
// бизнес-логику создания через сервис и возвращает ID созданной записи.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/meal-aggregator/internal/http/response"
	"github.com/magabrotheeeer/meal-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/meal-aggregator/internal/models"
)

// Handler управляет HTTP-запросами на добавление блюд.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики блюд
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания блюда.
type Service interface {
	Create(ctx context.Context, req models.DummyMeal) (string, error)
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
// @Summary Добавить блюдо
// @Description Создает новое блюдо в каталоге. Только для администраторов.
// @Tags Meals
// @Accept  json
// @Produce  json
// @Param request body models.DummyMeal true "Данные блюда"
// @Success 200 {object} map[string]any "ID созданного блюда"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Требуется роль администратора"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании блюда"
// @Router /meals [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.meal.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyMeal
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create meal", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create meal"))
		return
	}

	log.Info("success to create meal", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"inserted_id": id,
	}))
}
