// Package models содержит доменные структуры, описывающие блюда столовой,
// а также вспомогательные типы для работы с данными из внешних источников
// (например, JSON-запросы).
package models

import "time"

// Meal представляет собой основную модель блюда,
// используемую в бизнес-логике и хранилище.
type Meal struct {
	ID           string    `json:"id"`            // Уникальный идентификатор блюда
	Name         string    `json:"name"`          // Название блюда
	Category     string    `json:"category"`      // Категория: breakfast, lunch, dinner
	Image        string    `json:"image"`         // Ссылка на изображение
	Ingredients  []string  `json:"ingredients"`   // Список ингредиентов
	Description  string    `json:"description"`   // Описание блюда
	Price        float64   `json:"price"`         // Цена в основных единицах валюты
	Rating       float64   `json:"rating"`        // Средний рейтинг
	Likes        int       `json:"likes"`         // Количество лайков
	ReviewsCount int       `json:"reviews_count"` // Количество отзывов
	AdminName    string    `json:"admin_name"`    // Имя добавившего администратора
	AdminEmail   string    `json:"admin_email"`   // Почта добавившего администратора
	PostTime     time.Time `json:"post_time"`     // Время публикации
}

// DummyMeal используется для приёма данных блюда из JSON-запроса,
// прежде чем конвертировать их в Meal.
type DummyMeal struct {
	Name        string   `json:"name" validate:"required"`              // Название блюда
	Category    string   `json:"category" validate:"required"`          // Категория
	Image       string   `json:"image"`                                 // Ссылка на изображение
	Ingredients []string `json:"ingredients"`                           // Ингредиенты
	Description string   `json:"description"`                           // Описание
	Price       float64  `json:"price" validate:"required,gt=0"`        // Цена (>0)
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`         // Рейтинг 0..5
	AdminName   string   `json:"admin_name" validate:"required"`        // Имя администратора
	AdminEmail  string   `json:"admin_email" validate:"required,email"` // Почта администратора
}

// MealFilter описывает параметры выборки списка блюд:
// поиск по названию без учёта регистра и сортировка по цене.
type MealFilter struct {
	Search    string // Подстрока названия
	PriceSort string // asc или desc
}

// UpcomingMeal представляет блюдо из будущего меню. Пользователи могут
// лайкать его до публикации, список лайкнувших хранится в LikedUsers.
type UpcomingMeal struct {
	Meal
	LikedUsers []string `json:"liked_users"` // UID лайкнувших пользователей
	Published  bool     `json:"published"`   // Признак публикации в основное меню
}

// ProductionMeal представляет позицию производственного списка кухни.
type ProductionMeal struct {
	ID       string    `json:"id"`       // Уникальный идентификатор записи
	Name     string    `json:"name"`     // Название блюда
	Category string    `json:"category"` // Категория
	Image    string    `json:"image"`    // Ссылка на изображение
	Price    float64   `json:"price"`    // Цена
	AddedAt  time.Time `json:"added_at"` // Время добавления в список
}
