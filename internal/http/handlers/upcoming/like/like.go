// Package like реализует HTTP-обработчик переключения лайка блюда
// будущего меню.
package like

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/meal-aggregator/internal/http/response"
	"github.com/magabrotheeeer/meal-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/meal-aggregator/internal/storage/repository"
)

// Handler обрабатывает запросы на лайк блюда будущего меню.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики блюд
	validate *validator.Validate // Валидатор входных данных
}

// Service описывает интерфейс бизнес-логики лайков будущего меню.
type Service interface {
	ToggleUpcomingLike(ctx context.Context, id, userUID string, liked bool) (int, error)
}

// Request описывает тело запроса на переключение лайка.
type Request struct {
	UserUID string `json:"user_uid" validate:"required,uuid"` // UID пользователя
	Liked   bool   `json:"liked"`                             // Текущее состояние: true — лайк будет снят, false — поставлен
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
// @Summary Переключить лайк блюда будущего меню
// @Description Добавляет или убирает лайк пользователя у блюда будущего меню
// @Tags UpcomingMeals
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param id path string true "ID блюда будущего меню"
// @Param request body Request true "UID пользователя и направление лайка"
// @Success 200 {object} map[string]any "Актуальное количество лайков"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} response.ErrorResponse "Блюдо не найдено"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /upcoming-meals/{id}/likes [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.upcoming.like"
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

	var req Request
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

	likes, err := h.service.ToggleUpcomingLike(r.Context(), id, req.UserUID, req.Liked)
	if errors.Is(err, repository.ErrNotFound) {
		log.Error("upcoming meal not found", slog.String("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("upcoming meal not found"))
		return
	}
	if err != nil {
		log.Error("failed to toggle upcoming meal like", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not toggle like"))
		return
	}

	log.Info("success to toggle upcoming meal like",
		slog.String("id", id), slog.Int("likes", likes))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"likes": likes,
	}))
}
