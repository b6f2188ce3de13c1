package models

import "time"

// Review представляет отзыв пользователя о блюде.
type Review struct {
	ID        string    `json:"id"`         // Уникальный идентификатор отзыва
	MealID    string    `json:"meal_id"`    // Идентификатор блюда
	Title     string    `json:"title"`      // Название блюда на момент отзыва
	UserEmail string    `json:"user_email"` // Почта автора
	UserName  string    `json:"user_name"`  // Имя автора
	Rating    float64   `json:"rating"`     // Оценка 0..5
	Text      string    `json:"text"`       // Текст отзыва
	PostedAt  time.Time `json:"posted_at"`  // Время публикации
}

// DummyReview используется для приёма отзыва из JSON-запроса.
type DummyReview struct {
	MealID    string  `json:"meal_id" validate:"required,uuid"`       // Идентификатор блюда
	Title     string  `json:"title" validate:"required"`              // Название блюда
	UserEmail string  `json:"user_email" validate:"required,email"`   // Почта автора
	UserName  string  `json:"user_name" validate:"required"`          // Имя автора
	Rating    float64 `json:"rating" validate:"required,gte=0,lte=5"` // Оценка
	Text      string  `json:"text" validate:"required"`               // Текст отзыва
}

// ReviewFilter описывает параметры выборки отзывов.
// Пустые поля означают отсутствие фильтра.
type ReviewFilter struct {
	UserEmail string // Фильтр по автору
	Title     string // Фильтр по названию блюда
}
