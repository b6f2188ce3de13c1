// Package review содержит бизнес-логику для управления отзывами о блюдах.
package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/meal-aggregator/internal/models"
)

// ReviewRepository определяет методы для работы с отзывами в хранилище.
type ReviewRepository interface {
	// CreateReview сохраняет новый отзыв.
	CreateReview(ctx context.Context, review models.Review) (string, error)
	// ListReviews возвращает отзывы по фильтру.
	ListReviews(ctx context.Context, filter models.ReviewFilter) ([]*models.Review, error)
	// ReadReview возвращает отзыв по ID.
	ReadReview(ctx context.Context, id string) (*models.Review, error)
	// UpdateReviewText обновляет текст отзыва.
	UpdateReviewText(ctx context.Context, id, text string) (int, error)
	// RemoveReview удаляет отзыв по ID.
	RemoveReview(ctx context.Context, id string) (int, error)
	// IncrementMealReviews увеличивает счётчик отзывов блюда.
	IncrementMealReviews(ctx context.Context, id string) (int, error)
}

// ReviewService реализует бизнес-логику работы с отзывами.
type ReviewService struct {
	repo ReviewRepository
	log  *slog.Logger
}

// New создает новый экземпляр ReviewService.
func New(repo ReviewRepository, log *slog.Logger) *ReviewService {
	return &ReviewService{
		repo: repo,
		log:  log,
	}
}

// Create сохраняет отзыв и увеличивает счётчик отзывов блюда.
func (s *ReviewService) Create(ctx context.Context, req models.DummyReview) (string, error) {
	entry := models.Review{
		MealID:    req.MealID,
		Title:     req.Title,
		UserEmail: req.UserEmail,
		UserName:  req.UserName,
		Rating:    req.Rating,
		Text:      req.Text,
		PostedAt:  time.Now(),
	}
	id, err := s.repo.CreateReview(ctx, entry)
	if err != nil {
		return "", err
	}
	if _, err := s.repo.IncrementMealReviews(ctx, req.MealID); err != nil {
		s.log.Warn("failed to increment meal reviews counter",
			slog.String("meal_id", req.MealID), slog.Any("err", err))
	}
	s.log.Info("created new review", slog.String("id", id))
	return id, nil
}

// List возвращает отзывы по фильтру.
func (s *ReviewService) List(ctx context.Context, filter models.ReviewFilter) ([]*models.Review, error) {
	return s.repo.ListReviews(ctx, filter)
}

// Read возвращает отзыв по ID.
func (s *ReviewService) Read(ctx context.Context, id string) (*models.Review, error) {
	return s.repo.ReadReview(ctx, id)
}

// Update обновляет текст отзыва и возвращает количество обновлённых записей.
func (s *ReviewService) Update(ctx context.Context, id, text string) (int, error) {
	return s.repo.UpdateReviewText(ctx, id, text)
}

// Remove удаляет отзыв по ID и возвращает количество удалённых записей.
func (s *ReviewService) Remove(ctx context.Context, id string) (int, error) {
	return s.repo.RemoveReview(ctx, id)
}
