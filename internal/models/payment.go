package models

import "time"

// Payment представляет запись о завершённом платеже пользователя.
// Запись создаётся после подтверждения оплаты на стороне клиента,
// создание платёжного намерения само по себе платежом не является.
type Payment struct {
	ID        string    `json:"id"`         // Уникальный идентификатор записи
	Email     string    `json:"email"`      // Почта плательщика
	Amount    float64   `json:"amount"`     // Сумма в основных единицах валюты
	Currency  string    `json:"currency"`   // Валюта платежа
	IntentID  string    `json:"intent_id"`  // Идентификатор платёжного намерения провайдера
	PlanName  string    `json:"plan_name"`  // Оплаченный тарифный план
	CreatedAt time.Time `json:"created_at"` // Время платежа
}

// DummyPayment используется для приёма записи платежа из JSON-запроса.
type DummyPayment struct {
	Email    string  `json:"email" validate:"required,email"` // Почта плательщика
	Amount   float64 `json:"amount" validate:"required,gt=0"` // Сумма (>0)
	Currency string  `json:"currency" validate:"required"`    // Валюта
	IntentID string  `json:"intent_id" validate:"required"`   // Идентификатор намерения
	PlanName string  `json:"plan_name" validate:"required"`   // Тарифный план
}
