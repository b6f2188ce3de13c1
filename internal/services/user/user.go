// Package user содержит бизнес-логику управления пользователями:
// идемпотентную регистрацию, проверку роли и повышение до администратора.
package user

import (
	"context"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/meal-aggregator/internal/models"
	"github.com/magabrotheeeer/meal-aggregator/internal/storage/repository"
)

// UserRepository определяет методы для работы с пользователями в хранилище.
type UserRepository interface {
	// CreateUser идемпотентно сохраняет пользователя по email.
	CreateUser(ctx context.Context, user models.User) (string, bool, error)
	// FindUserByEmail возвращает пользователя по email.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]*models.User, error)
	// PromoteUserToAdmin выставляет роль admin по UID.
	PromoteUserToAdmin(ctx context.Context, uid string) (int, error)
}

// UserService реализует бизнес-логику работы с пользователями.
type UserService struct {
	repo UserRepository
	log  *slog.Logger
}

// New создает новый экземпляр UserService.
func New(repo UserRepository, log *slog.Logger) *UserService {
	return &UserService{
		repo: repo,
		log:  log,
	}
}

// Register идемпотентно регистрирует пользователя по email.
// Повторная регистрация существующего email возвращает created=false
// и пустой UID, ошибки не возникает.
func (s *UserService) Register(ctx context.Context, req models.DummyUser) (string, bool, error) {
	user := models.User{
		Email:    req.Email,
		Username: req.Username,
		Role:     models.RoleMember,
	}
	uid, created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return "", false, err
	}
	if created {
		s.log.Info("registered new user", slog.String("email", req.Email))
	}
	return uid, created, nil
}

// List возвращает всех пользователей.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListUsers(ctx)
}

// IsAdmin возвращает true, если пользователь с данным email имеет роль admin.
// Отсутствие пользователя в хранилище означает отсутствие роли, а не ошибку.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.repo.FindUserByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.Role == models.RoleAdmin, nil
}

// Promote выставляет пользователю роль admin по UID и возвращает
// количество обновлённых записей.
func (s *UserService) Promote(ctx context.Context, uid string) (int, error) {
	count, err := s.repo.PromoteUserToAdmin(ctx, uid)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, repository.ErrNotFound
	}
	s.log.Info("promoted user to admin", slog.String("uid", uid))
	return count, nil
}
