// Package token реализует HTTP-обработчик выпуска токена сессии.
//
// Handler принимает JSON с данными пользователя, подписывает их секретным
// ключом сервера и возвращает токен с фиксированным сроком жизни.
package token

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/meal-aggregator/internal/http/response"
	appjwt "github.com/magabrotheeeer/meal-aggregator/internal/lib/jwt"
	"github.com/magabrotheeeer/meal-aggregator/internal/lib/sl"
)

// ClaimsRequest представляет данные пользователя для выпуска токена.
type ClaimsRequest struct {
	Email    string `json:"email" validate:"required,email"` // Электронная почта
	Username string `json:"username" validate:"required"`    // Имя пользователя
}

// Handler обрабатывает запросы на выпуск токена сессии.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	maker    appjwt.Maker        // Сервис подписи токенов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// New создает новый Handler с переданными логгером и сервисом токенов.
func New(log *slog.Logger, maker appjwt.Maker) *Handler {
	return &Handler{
		log:      log,
		maker:    maker,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Выпустить токен сессии
// @Description Подписывает переданные данные пользователя и возвращает JWT со сроком жизни 7 часов
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body ClaimsRequest true "Данные пользователя"
// @Success 200 {object} map[string]any "Токен сессии"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка подписи токена"
// @Router /jwt [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.token"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req ClaimsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	token, err := h.maker.GenerateToken(req.Email, req.Username)
	if err != nil {
		log.Error("failed to sign token", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not issue token"))
		return
	}

	log.Info("issued session token", slog.String("email", req.Email))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"token": token,
	}))
}
