// Package payment содержит бизнес-логику создания платёжных намерений
// и учёта завершённых платежей.
//
// Создание намерения двухфазное: сервис проверяет право пользователя на
// оплату, обращается к провайдеру и возвращает client_secret; запись о
// платеже появляется отдельным вызовом после подтверждения оплаты клиентом.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/meal-aggregator/internal/models"
	"github.com/magabrotheeeer/meal-aggregator/internal/paymentprovider"
	"github.com/magabrotheeeer/meal-aggregator/internal/storage/repository"
)

// CooldownWindow минимальный интервал между платежами одного пользователя.
const CooldownWindow = 30 * 24 * time.Hour

var (
	// ErrCooldownActive возвращается, когда с последнего платежа пользователя
	// прошло меньше CooldownWindow.
	ErrCooldownActive = errors.New("payment cooldown active")
	// ErrInvalidAmount возвращается при нулевой или отрицательной сумме.
	ErrInvalidAmount = errors.New("invalid payment amount")
)

// PaymentRepository определяет методы для работы с платежами в хранилище.
type PaymentRepository interface {
	// CreatePayment сохраняет запись о завершённом платеже.
	CreatePayment(ctx context.Context, payment models.Payment) (string, error)
	// FindLatestPayment возвращает самый свежий платёж пользователя.
	FindLatestPayment(ctx context.Context, email string) (*models.Payment, error)
	// ListPaymentsByEmail возвращает платежи пользователя.
	ListPaymentsByEmail(ctx context.Context, email string) ([]*models.Payment, error)
	// ListAllPayments возвращает все платежи.
	ListAllPayments(ctx context.Context) ([]*models.Payment, error)
}

// ProviderClient определяет интерфейс платёжного провайдера.
type ProviderClient interface {
	CreatePaymentIntent(ctx context.Context, req paymentprovider.CreateIntentRequest) (*paymentprovider.PaymentIntent, error)
}

// PaymentService реализует проверку права на оплату и создание
// платёжных намерений через провайдера.
type PaymentService struct {
	repo     PaymentRepository
	provider ProviderClient
	currency string
	log      *slog.Logger

	// locks сериализует создание намерений по email: два конкурентных
	// запроса одного пользователя не могут одновременно пройти проверку
	// окна между платежами. Мьютексы из карты не вытесняются, её размер
	// ограничен числом уникальных email.
	locks sync.Map
}

// New создает новый экземпляр PaymentService.
func New(repo PaymentRepository, provider ProviderClient, currency string, log *slog.Logger) *PaymentService {
	return &PaymentService{
		repo:     repo,
		provider: provider,
		currency: currency,
		log:      log,
	}
}

func (s *PaymentService) lockFor(email string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(email, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// CreateIntent проверяет сумму и окно между платежами, затем создаёт
// платёжное намерение у провайдера и возвращает client_secret.
//
// Сумма принимается в основных единицах валюты и переводится в минимальные
// усечением. Провайдер не вызывается ни при некорректной сумме, ни при
// активном окне ожидания.
func (s *PaymentService) CreateIntent(ctx context.Context, email string, price float64) (string, error) {
	const op = "services.payment.CreateIntent"

	if price <= 0 {
		return "", ErrInvalidAmount
	}

	mu := s.lockFor(email)
	mu.Lock()
	defer mu.Unlock()

	latest, err := s.repo.FindLatestPayment(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if latest != nil && time.Since(latest.CreatedAt) < CooldownWindow {
		return "", ErrCooldownActive
	}

	// price*100 в float64 теряет точность (19.99*100 = 1998.999...),
	// поэтому перед усечением добавляется эпсилон.
	amount := int64(math.Trunc(price*100 + 1e-9))
	intent, err := s.provider.CreatePaymentIntent(ctx, paymentprovider.CreateIntentRequest{
		Amount:             amount,
		Currency:           s.currency,
		PaymentMethodTypes: []string{"card"},
		IdempotencyKey:     uuid.NewString(),
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("created payment intent",
		slog.String("email", email), slog.Int64("amount", amount))
	return intent.ClientSecret, nil
}

// Record сохраняет запись о подтверждённом платеже и возвращает её ID.
func (s *PaymentService) Record(ctx context.Context, req models.DummyPayment) (string, error) {
	payment := models.Payment{
		Email:     req.Email,
		Amount:    req.Amount,
		Currency:  req.Currency,
		IntentID:  req.IntentID,
		PlanName:  req.PlanName,
		CreatedAt: time.Now(),
	}
	id, err := s.repo.CreatePayment(ctx, payment)
	if err != nil {
		return "", err
	}
	s.log.Info("recorded payment", slog.String("id", id), slog.String("email", req.Email))
	return id, nil
}

// ListByEmail возвращает платежи пользователя.
func (s *PaymentService) ListByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	return s.repo.ListPaymentsByEmail(ctx, email)
}

// ListAll возвращает все платежи.
func (s *PaymentService) ListAll(ctx context.Context) ([]*models.Payment, error) {
	return s.repo.ListAllPayments(ctx)
}
