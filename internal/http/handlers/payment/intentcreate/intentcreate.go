// Package intentcreate реализует HTTP-обработчик создания платёжного
// намерения.
package intentcreate

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/meal-aggregator/internal/http/response"
	"github.com/magabrotheeeer/meal-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/meal-aggregator/internal/services/payment"
)

// Handler обрабатывает запросы на создание платёжного намерения.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики платежей
	validate *validator.Validate // Валидатор входных данных
}

// Service описывает интерфейс бизнес-логики платежей.
type Service interface {
	CreateIntent(ctx context.Context, email string, price float64) (string, error)
}

// Request описывает тело запроса на создание платёжного намерения.
type Request struct {
	// Нулевая и отрицательная сумма отклоняется сервисом со статусом 400,
	// поэтому required на Price не ставится.
	Email string  `json:"email" validate:"required,email"` // Почта плательщика
	Price float64 `json:"price"`                           // Сумма в основных единицах валюты
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
// @Summary Создать платёжное намерение
// @Description Проверяет право пользователя на оплату и создает платёжное намерение у провайдера
// @Tags Payments
// @Accept  json
// @Produce  json
// @Param request body Request true "Почта и сумма платежа"
// @Success 200 {object} map[string]any "Секрет платёжного намерения"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос или сумма"
// @Failure 403 {object} response.ErrorResponse "Окно между платежами ещё не истекло"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /create-payment-intent [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.intentcreate"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

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

	clientSecret, err := h.service.CreateIntent(r.Context(), req.Email, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidAmount):
			log.Error("invalid payment amount", slog.Float64("price", req.Price))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid payment amount"))
		case errors.Is(err, payment.ErrCooldownActive):
			log.Error("payment cooldown active", slog.String("email", req.Email))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("you can only pay once every 30 days"))
		default:
			log.Error("failed to create payment intent", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create payment intent"))
		}
		return
	}

	log.Info("success to create payment intent", slog.String("email", req.Email))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"client_secret": clientSecret,
	}))
}
