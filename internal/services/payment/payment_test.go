package payment

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/meal-aggregator/internal/models"
	"github.com/magabrotheeeer/meal-aggregator/internal/paymentprovider"
	"github.com/magabrotheeeer/meal-aggregator/internal/storage/repository"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreatePayment(ctx context.Context, payment models.Payment) (string, error) {
	args := m.Called(ctx, payment)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) FindLatestPayment(ctx context.Context, email string) (*models.Payment, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockRepository) ListPaymentsByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Payment), args.Error(1)
}

func (m *MockRepository) ListAllPayments(ctx context.Context) ([]*models.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Payment), args.Error(1)
}

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) CreatePaymentIntent(ctx context.Context, req paymentprovider.CreateIntentRequest) (*paymentprovider.PaymentIntent, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentprovider.PaymentIntent), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestService_CreateIntent(t *testing.T) {
	tests := []struct {
		name           string
		email          string
		price          float64
		setupMocks     func(*MockRepository, *MockProvider)
		expectedSecret string
		expectedError  error
	}{
		{
			name:  "first payment - provider called with converted amount",
			email: "user@example.com",
			price: 19.99,
			setupMocks: func(r *MockRepository, p *MockProvider) {
				r.On("FindLatestPayment", mock.Anything, "user@example.com").
					Return(nil, repository.ErrNotFound).Once()
				p.On("CreatePaymentIntent", mock.Anything, mock.MatchedBy(func(req paymentprovider.CreateIntentRequest) bool {
					return req.Amount == 1999 &&
						req.Currency == "usd" &&
						len(req.PaymentMethodTypes) == 1 &&
						req.PaymentMethodTypes[0] == "card" &&
						req.IdempotencyKey != ""
				})).Return(&paymentprovider.PaymentIntent{
					ID:           "pi_123",
					ClientSecret: "pi_123_secret",
				}, nil).Once()
			},
			expectedSecret: "pi_123_secret",
		},
		{
			name:  "cooldown expired - payment allowed",
			email: "user@example.com",
			price: 10,
			setupMocks: func(r *MockRepository, p *MockProvider) {
				r.On("FindLatestPayment", mock.Anything, "user@example.com").
					Return(&models.Payment{
						Email:     "user@example.com",
						CreatedAt: time.Now().Add(-31 * 24 * time.Hour),
					}, nil).Once()
				p.On("CreatePaymentIntent", mock.Anything, mock.Anything).
					Return(&paymentprovider.PaymentIntent{
						ID:           "pi_456",
						ClientSecret: "pi_456_secret",
					}, nil).Once()
			},
			expectedSecret: "pi_456_secret",
		},
		{
			name:  "cooldown active - provider never called",
			email: "user@example.com",
			price: 10,
			setupMocks: func(r *MockRepository, _ *MockProvider) {
				r.On("FindLatestPayment", mock.Anything, "user@example.com").
					Return(&models.Payment{
						Email:     "user@example.com",
						CreatedAt: time.Now().Add(-10 * 24 * time.Hour),
					}, nil).Once()
			},
			expectedError: ErrCooldownActive,
		},
		{
			name:          "zero price - rejected before any lookup",
			email:         "user@example.com",
			price:         0,
			setupMocks:    func(_ *MockRepository, _ *MockProvider) {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "negative price - rejected before any lookup",
			email:         "user@example.com",
			price:         -5,
			setupMocks:    func(_ *MockRepository, _ *MockProvider) {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:  "repository error",
			email: "user@example.com",
			price: 10,
			setupMocks: func(r *MockRepository, _ *MockProvider) {
				r.On("FindLatestPayment", mock.Anything, "user@example.com").
					Return(nil, errors.New("db error")).Once()
			},
			expectedError: errors.New("db error"),
		},
		{
			name:  "provider error",
			email: "user@example.com",
			price: 10,
			setupMocks: func(r *MockRepository, p *MockProvider) {
				r.On("FindLatestPayment", mock.Anything, "user@example.com").
					Return(nil, repository.ErrNotFound).Once()
				p.On("CreatePaymentIntent", mock.Anything, mock.Anything).
					Return(nil, errors.New("stripe error")).Once()
			},
			expectedError: errors.New("stripe error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			provider := new(MockProvider)
			tt.setupMocks(repo, provider)

			service := New(repo, provider, "usd", newNoopLogger())

			secret, err := service.CreateIntent(context.Background(), tt.email, tt.price)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				assert.Empty(t, secret)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedSecret, secret)
			}

			repo.AssertExpectations(t)
			provider.AssertExpectations(t)
		})
	}
}

func TestService_CreateIntent_TruncatesAmount(t *testing.T) {
	repo := new(MockRepository)
	provider := new(MockProvider)

	repo.On("FindLatestPayment", mock.Anything, "user@example.com").
		Return(nil, repository.ErrNotFound).Once()
	provider.On("CreatePaymentIntent", mock.Anything, mock.MatchedBy(func(req paymentprovider.CreateIntentRequest) bool {
		return req.Amount == 1099
	})).Return(&paymentprovider.PaymentIntent{ClientSecret: "secret"}, nil).Once()

	service := New(repo, provider, "usd", newNoopLogger())

	_, err := service.CreateIntent(context.Background(), "user@example.com", 10.999)
	assert.NoError(t, err)

	repo.AssertExpectations(t)
	provider.AssertExpectations(t)
}

func TestService_CreateIntent_SerializesPerEmail(t *testing.T) {
	repo := new(MockRepository)
	provider := new(MockProvider)

	var intentCreated atomic.Bool
	repo.On("FindLatestPayment", mock.Anything, "user@example.com").
		Return(nil, repository.ErrNotFound).Once()
	repo.On("FindLatestPayment", mock.Anything, "user@example.com").
		Run(func(_ mock.Arguments) {
			// Вторая проверка окна начинается только после того, как первый
			// запрос полностью завершил создание намерения.
			assert.True(t, intentCreated.Load())
		}).
		Return(&models.Payment{
			Email:     "user@example.com",
			CreatedAt: time.Now(),
		}, nil).Once()
	provider.On("CreatePaymentIntent", mock.Anything, mock.Anything).
		Run(func(_ mock.Arguments) {
			time.Sleep(50 * time.Millisecond)
			intentCreated.Store(true)
		}).
		Return(&paymentprovider.PaymentIntent{ClientSecret: "secret"}, nil).Once()

	service := New(repo, provider, "usd", newNoopLogger())

	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := service.CreateIntent(context.Background(), "user@example.com", 10)
			results <- err
		}()
	}
	first, second := <-results, <-results

	// Ровно один из конкурентных запросов проходит, второй отклоняется
	// по окну между платежами.
	if first == nil {
		assert.ErrorIs(t, second, ErrCooldownActive)
	} else {
		assert.NoError(t, second)
		assert.ErrorIs(t, first, ErrCooldownActive)
	}

	repo.AssertExpectations(t)
	provider.AssertExpectations(t)
}

func TestService_Record(t *testing.T) {
	repo := new(MockRepository)
	provider := new(MockProvider)

	repo.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p models.Payment) bool {
		return p.Email == "user@example.com" &&
			p.Amount == 19.99 &&
			p.Currency == "usd" &&
			p.IntentID == "pi_123" &&
			p.PlanName == "standard" &&
			!p.CreatedAt.IsZero()
	})).Return("payment-id", nil).Once()

	service := New(repo, provider, "usd", newNoopLogger())

	id, err := service.Record(context.Background(), models.DummyPayment{
		Email:    "user@example.com",
		Amount:   19.99,
		Currency: "usd",
		IntentID: "pi_123",
		PlanName: "standard",
	})

	assert.NoError(t, err)
	assert.Equal(t, "payment-id", id)
	repo.AssertExpectations(t)
}

func TestService_ListByEmail(t *testing.T) {
	expectedPayments := []*models.Payment{
		{ID: "1", Email: "user@example.com", Amount: 10},
		{ID: "2", Email: "user@example.com", Amount: 20},
	}

	repo := new(MockRepository)
	provider := new(MockProvider)
	repo.On("ListPaymentsByEmail", mock.Anything, "user@example.com").
		Return(expectedPayments, nil).Once()

	service := New(repo, provider, "usd", newNoopLogger())

	result, err := service.ListByEmail(context.Background(), "user@example.com")

	assert.NoError(t, err)
	assert.Equal(t, expectedPayments, result)
	repo.AssertExpectations(t)
}
