// Package mealrequest содержит бизнес-логику для заявок на выдачу блюд.
package mealrequest

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/meal-aggregator/internal/models"
)

// RequestRepository определяет методы для работы с заявками в хранилище.
type RequestRepository interface {
	// CreateMealRequest сохраняет новую заявку.
	CreateMealRequest(ctx context.Context, req models.MealRequest) (string, error)
	// ListMealRequests возвращает заявки с опциональным фильтром по email.
	ListMealRequests(ctx context.Context, userEmail string) ([]*models.MealRequest, error)
	// MarkMealRequestDelivered переводит заявку в статус delivered.
	MarkMealRequestDelivered(ctx context.Context, id string) (int, error)
	// RemoveMealRequest удаляет заявку.
	RemoveMealRequest(ctx context.Context, id string) (int, error)
}

// RequestService реализует бизнес-логику работы с заявками.
type RequestService struct {
	repo RequestRepository
	log  *slog.Logger
}

// New создает новый экземпляр RequestService.
func New(repo RequestRepository, log *slog.Logger) *RequestService {
	return &RequestService{
		repo: repo,
		log:  log,
	}
}

// Create сохраняет заявку со статусом pending и возвращает её ID.
func (s *RequestService) Create(ctx context.Context, req models.DummyMealRequest) (string, error) {
	entry := models.MealRequest{
		MealID:      req.MealID,
		MealName:    req.MealName,
		UserEmail:   req.UserEmail,
		UserName:    req.UserName,
		Status:      models.RequestStatusPending,
		RequestedAt: time.Now(),
	}
	id, err := s.repo.CreateMealRequest(ctx, entry)
	if err != nil {
		return "", err
	}
	s.log.Info("created new meal request", slog.String("id", id))
	return id, nil
}

// List возвращает заявки, опционально фильтруя по email заказчика.
func (s *RequestService) List(ctx context.Context, userEmail string) ([]*models.MealRequest, error) {
	return s.repo.ListMealRequests(ctx, userEmail)
}

// Deliver переводит заявку в статус delivered и возвращает количество
// обновлённых записей.
func (s *RequestService) Deliver(ctx context.Context, id string) (int, error) {
	return s.repo.MarkMealRequestDelivered(ctx, id)
}

// Remove удаляет заявку по ID и возвращает количество удалённых записей.
func (s *RequestService) Remove(ctx context.Context, id string) (int, error) {
	return s.repo.RemoveMealRequest(ctx, id)
}
