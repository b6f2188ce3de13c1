// Package models содержит доменную модель пользователя системы —
// учётную запись постояльца хостела с ролью и датой регистрации.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// Роли пользователей. Новая учётная запись всегда создаётся с ролью member.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID       string    `json:"uid"`        // Уникальный идентификатор пользователя
	Email     string    `json:"email"`      // Электронная почта (уникальная)
	Username  string    `json:"username"`   // Отображаемое имя пользователя
	Role      string    `json:"role"`       // Роль пользователя, admin или member
	CreatedAt time.Time `json:"created_at"` // Дата создания учётной записи
}

// DummyUser используется для приёма данных из JSON-запроса
// при идемпотентной регистрации пользователя.
type DummyUser struct {
	Email    string `json:"email" validate:"required,email"` // Электронная почта
	Username string `json:"username" validate:"required"`    // Имя пользователя
}
