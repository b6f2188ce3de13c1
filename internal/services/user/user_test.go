package user

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/meal-aggregator/internal/models"
	"github.com/magabrotheeeer/meal-aggregator/internal/storage/repository"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateUser(ctx context.Context, user models.User) (string, bool, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockRepository) PromoteUserToAdmin(ctx context.Context, uid string) (int, error) {
	args := m.Called(ctx, uid)
	return args.Int(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestService_Register(t *testing.T) {
	tests := []struct {
		name            string
		req             models.DummyUser
		setupMocks      func(*MockRepository)
		expectedUID     string
		expectedCreated bool
		expectedError   bool
	}{
		{
			name: "новый пользователь получает роль member",
			req:  models.DummyUser{Email: "user@example.com", Username: "testuser"},
			setupMocks: func(r *MockRepository) {
				r.On("CreateUser", mock.Anything, models.User{
					Email:    "user@example.com",
					Username: "testuser",
					Role:     models.RoleMember,
				}).Return("uid-123", true, nil).Once()
			},
			expectedUID:     "uid-123",
			expectedCreated: true,
		},
		{
			name: "существующий email не создаёт дубликата",
			req:  models.DummyUser{Email: "user@example.com", Username: "testuser"},
			setupMocks: func(r *MockRepository) {
				r.On("CreateUser", mock.Anything, mock.Anything).
					Return("", false, nil).Once()
			},
			expectedUID:     "",
			expectedCreated: false,
		},
		{
			name: "ошибка хранилища",
			req:  models.DummyUser{Email: "user@example.com", Username: "testuser"},
			setupMocks: func(r *MockRepository) {
				r.On("CreateUser", mock.Anything, mock.Anything).
					Return("", false, errors.New("db error")).Once()
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			tt.setupMocks(repo)

			service := New(repo, newNoopLogger())

			uid, created, err := service.Register(context.Background(), tt.req)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUID, uid)
				assert.Equal(t, tt.expectedCreated, created)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestService_IsAdmin(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMocks    func(*MockRepository)
		expectedAdmin bool
		expectedError bool
	}{
		{
			name:  "пользователь с ролью admin",
			email: "admin@example.com",
			setupMocks: func(r *MockRepository) {
				r.On("FindUserByEmail", mock.Anything, "admin@example.com").
					Return(&models.User{Email: "admin@example.com", Role: models.RoleAdmin}, nil).Once()
			},
			expectedAdmin: true,
		},
		{
			name:  "пользователь с ролью member",
			email: "user@example.com",
			setupMocks: func(r *MockRepository) {
				r.On("FindUserByEmail", mock.Anything, "user@example.com").
					Return(&models.User{Email: "user@example.com", Role: models.RoleMember}, nil).Once()
			},
			expectedAdmin: false,
		},
		{
			name:  "незарегистрированный email - не админ и не ошибка",
			email: "ghost@example.com",
			setupMocks: func(r *MockRepository) {
				r.On("FindUserByEmail", mock.Anything, "ghost@example.com").
					Return(nil, repository.ErrNotFound).Once()
			},
			expectedAdmin: false,
		},
		{
			name:  "ошибка хранилища",
			email: "user@example.com",
			setupMocks: func(r *MockRepository) {
				r.On("FindUserByEmail", mock.Anything, "user@example.com").
					Return(nil, errors.New("db error")).Once()
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			tt.setupMocks(repo)

			service := New(repo, newNoopLogger())

			isAdmin, err := service.IsAdmin(context.Background(), tt.email)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAdmin, isAdmin)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestService_Promote(t *testing.T) {
	t.Run("успешное повышение", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("PromoteUserToAdmin", mock.Anything, "uid-123").Return(1, nil).Once()

		service := New(repo, newNoopLogger())

		count, err := service.Promote(context.Background(), "uid-123")
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
		repo.AssertExpectations(t)
	})

	t.Run("несуществующий uid", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("PromoteUserToAdmin", mock.Anything, "uid-404").Return(0, nil).Once()

		service := New(repo, newNoopLogger())

		_, err := service.Promote(context.Background(), "uid-404")
		assert.ErrorIs(t, err, repository.ErrNotFound)
		repo.AssertExpectations(t)
	})
}
