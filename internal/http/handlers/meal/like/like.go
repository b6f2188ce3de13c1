// Package like реализует HTTP-обработчик изменения количества лайков блюда.
package like

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/meal-aggregator/internal/http/response"
	"github.com/magabrotheeeer/meal-aggregator/internal/lib/sl"
)

// Request представляет тело запроса: liked=true — пользователь поставил
// лайк, liked=false — снял.
type Request struct {
	Liked bool `json:"liked"`
}

// Handler обрабатывает запросы на изменение лайков блюда.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики блюд
}

// Service описывает интерфейс бизнес-логики лайков.
type Service interface {
	Like(ctx context.Context, id string, liked bool) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Изменить лайки блюда
// @Description Увеличивает или уменьшает количество лайков блюда по флагу liked
// @Tags Meals
// @Accept  json
// @Produce  json
// @Param id path string true "ID блюда"
// @Param request body Request true "Флаг лайка"
// @Success 200 {object} map[string]any "Количество обновлённых записей"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или id"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Блюдо не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /meals/{id}/likes [patch]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.meal.like"
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
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	count, err := h.service.Like(r.Context(), id, req.Liked)
	if err != nil {
		log.Error("failed to change meal likes", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not change meal likes"))
		return
	}
	if count == 0 {
		log.Error("meal not found", slog.String("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("meal not found"))
		return
	}

	log.Info("success to change meal likes", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"updated_count": count,
	}))
}
