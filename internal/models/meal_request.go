package models

import "time"

// Статусы заявки на блюдо.
const (
	RequestStatusPending   = "pending"
	RequestStatusDelivered = "delivered"
)

// MealRequest представляет заявку пользователя на выдачу блюда.
type MealRequest struct {
	ID          string    `json:"id"`           // Уникальный идентификатор заявки
	MealID      string    `json:"meal_id"`      // Идентификатор блюда
	MealName    string    `json:"meal_name"`    // Название блюда
	UserEmail   string    `json:"user_email"`   // Почта заказчика
	UserName    string    `json:"user_name"`    // Имя заказчика
	Status      string    `json:"status"`       // pending или delivered
	RequestedAt time.Time `json:"requested_at"` // Время создания заявки
}

// DummyMealRequest используется для приёма заявки из JSON-запроса.
type DummyMealRequest struct {
	MealID    string `json:"meal_id" validate:"required,uuid"`     // Идентификатор блюда
	MealName  string `json:"meal_name" validate:"required"`        // Название блюда
	UserEmail string `json:"user_email" validate:"required,email"` // Почта заказчика
	UserName  string `json:"user_name" validate:"required"`        // Имя заказчика
}
