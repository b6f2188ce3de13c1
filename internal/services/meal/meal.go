// Package meal содержит бизнес-логику для управления каталогом блюд,
// будущим меню и производственным списком кухни, включая кеширование
// карточек блюд.
package meal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/meal-aggregator/internal/models"
)

// MealRepository определяет методы для работы с блюдами в хранилище.
type MealRepository interface {
	// CreateMeal добавляет новое блюдо и возвращает его ID.
	CreateMeal(ctx context.Context, meal models.Meal) (string, error)
	// ListMeals возвращает блюда по фильтру поиска и сортировки.
	ListMeals(ctx context.Context, filter models.MealFilter) ([]*models.Meal, error)
	// ReadMeal возвращает блюдо по ID.
	ReadMeal(ctx context.Context, id string) (*models.Meal, error)
	// UpdateMeal обновляет данные блюда по ID.
	UpdateMeal(ctx context.Context, meal models.Meal, id string) (int, error)
	// RemoveMeal удаляет блюдо по ID.
	RemoveMeal(ctx context.Context, id string) (int, error)
	// ChangeMealLikes изменяет количество лайков на delta.
	ChangeMealLikes(ctx context.Context, id string, delta int) (int, error)
	// IncrementMealReviews увеличивает счётчик отзывов.
	IncrementMealReviews(ctx context.Context, id string) (int, error)
	// CreateUpcomingMeal добавляет блюдо будущего меню.
	CreateUpcomingMeal(ctx context.Context, meal models.UpcomingMeal) (string, error)
	// ListUpcomingMeals возвращает блюда будущего меню.
	ListUpcomingMeals(ctx context.Context) ([]*models.UpcomingMeal, error)
	// ToggleUpcomingMealLike переключает лайк пользователя.
	ToggleUpcomingMealLike(ctx context.Context, id, userUID string, liked bool) (int, error)
	// CreateProductionMeal добавляет позицию производственного списка.
	CreateProductionMeal(ctx context.Context, meal models.ProductionMeal) (string, error)
	// ListProductionMeals возвращает производственный список.
	ListProductionMeals(ctx context.Context) ([]*models.ProductionMeal, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// MealService реализует бизнес-логику работы с блюдами, включая кеширование.
type MealService struct {
	repo  MealRepository
	cache Cache
	log   *slog.Logger
}

// New создает новый экземпляр MealService.
func New(repo MealRepository, cache Cache, log *slog.Logger) *MealService {
	return &MealService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create добавляет новое блюдо в каталог и возвращает его ID.
func (s *MealService) Create(ctx context.Context, req models.DummyMeal) (string, error) {
	entry := models.Meal{
		Name:        req.Name,
		Category:    req.Category,
		Image:       req.Image,
		Ingredients: req.Ingredients,
		Description: req.Description,
		Price:       req.Price,
		Rating:      req.Rating,
		AdminName:   req.AdminName,
		AdminEmail:  req.AdminEmail,
		PostTime:    time.Now(),
	}
	id, err := s.repo.CreateMeal(ctx, entry)
	if err != nil {
		return "", err
	}
	s.log.Info("created new meal", slog.String("id", id))
	return id, nil
}

// List возвращает блюда по фильтру поиска и сортировки.
func (s *MealService) List(ctx context.Context, filter models.MealFilter) ([]*models.Meal, error) {
	return s.repo.ListMeals(ctx, filter)
}

// Read возвращает блюдо по ID, используя кеш или репозиторий.
func (s *MealService) Read(ctx context.Context, id string) (*models.Meal, error) {
	var result *models.Meal
	cacheKey := fmt.Sprintf("meal:%s", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}
	result, err = s.repo.ReadMeal(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache meal", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// Update обновляет блюдо и инвалидирует кеш.
func (s *MealService) Update(ctx context.Context, req models.DummyMeal, id string) (int, error) {
	entry := models.Meal{
		Name:        req.Name,
		Category:    req.Category,
		Image:       req.Image,
		Ingredients: req.Ingredients,
		Description: req.Description,
		Price:       req.Price,
		Rating:      req.Rating,
		AdminName:   req.AdminName,
		AdminEmail:  req.AdminEmail,
	}
	count, err := s.repo.UpdateMeal(ctx, entry, id)
	if err != nil {
		return 0, err
	}
	s.invalidate(id)
	return count, nil
}

// Remove удаляет блюдо по ID и инвалидирует кеш.
func (s *MealService) Remove(ctx context.Context, id string) (int, error) {
	s.invalidate(id)
	return s.repo.RemoveMeal(ctx, id)
}

// Like изменяет количество лайков блюда: +1, если пользователь поставил
// лайк, и -1, если снял.
func (s *MealService) Like(ctx context.Context, id string, liked bool) (int, error) {
	delta := 1
	if !liked {
		delta = -1
	}
	count, err := s.repo.ChangeMealLikes(ctx, id, delta)
	if err != nil {
		return 0, err
	}
	s.invalidate(id)
	return count, nil
}

// IncrementReviews увеличивает счётчик отзывов блюда.
func (s *MealService) IncrementReviews(ctx context.Context, id string) (int, error) {
	count, err := s.repo.IncrementMealReviews(ctx, id)
	if err != nil {
		return 0, err
	}
	s.invalidate(id)
	return count, nil
}

// CreateUpcoming добавляет блюдо будущего меню.
func (s *MealService) CreateUpcoming(ctx context.Context, req models.DummyMeal) (string, error) {
	entry := models.UpcomingMeal{
		Meal: models.Meal{
			Name:        req.Name,
			Category:    req.Category,
			Image:       req.Image,
			Ingredients: req.Ingredients,
			Description: req.Description,
			Price:       req.Price,
			Rating:      req.Rating,
			AdminName:   req.AdminName,
			AdminEmail:  req.AdminEmail,
			PostTime:    time.Now(),
		},
	}
	id, err := s.repo.CreateUpcomingMeal(ctx, entry)
	if err != nil {
		return "", err
	}
	s.log.Info("created new upcoming meal", slog.String("id", id))
	return id, nil
}

// ListUpcoming возвращает блюда будущего меню.
func (s *MealService) ListUpcoming(ctx context.Context) ([]*models.UpcomingMeal, error) {
	return s.repo.ListUpcomingMeals(ctx)
}

// ToggleUpcomingLike переключает лайк пользователя на блюде будущего меню
// и возвращает актуальное количество лайков.
func (s *MealService) ToggleUpcomingLike(ctx context.Context, id, userUID string, liked bool) (int, error) {
	return s.repo.ToggleUpcomingMealLike(ctx, id, userUID, liked)
}

// AddToProduction добавляет позицию в производственный список и возвращает
// её ID вместе с актуальным списком.
func (s *MealService) AddToProduction(ctx context.Context, req models.DummyMeal) (string, []*models.ProductionMeal, error) {
	entry := models.ProductionMeal{
		Name:     req.Name,
		Category: req.Category,
		Image:    req.Image,
		Price:    req.Price,
		AddedAt:  time.Now(),
	}
	id, err := s.repo.CreateProductionMeal(ctx, entry)
	if err != nil {
		return "", nil, err
	}
	all, err := s.repo.ListProductionMeals(ctx)
	if err != nil {
		return "", nil, err
	}
	return id, all, nil
}

// ListProduction возвращает производственный список кухни.
func (s *MealService) ListProduction(ctx context.Context) ([]*models.ProductionMeal, error) {
	return s.repo.ListProductionMeals(ctx)
}

func (s *MealService) invalidate(id string) {
	cacheKey := fmt.Sprintf("meal:%s", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
}
