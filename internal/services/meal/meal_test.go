package meal

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/meal-aggregator/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateMeal(ctx context.Context, meal models.Meal) (string, error) {
	args := m.Called(ctx, meal)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) ListMeals(ctx context.Context, filter models.MealFilter) ([]*models.Meal, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Meal), args.Error(1)
}

func (m *MockRepository) ReadMeal(ctx context.Context, id string) (*models.Meal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockRepository) UpdateMeal(ctx context.Context, meal models.Meal, id string) (int, error) {
	args := m.Called(ctx, meal, id)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) RemoveMeal(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) ChangeMealLikes(ctx context.Context, id string, delta int) (int, error) {
	args := m.Called(ctx, id, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) IncrementMealReviews(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) CreateUpcomingMeal(ctx context.Context, meal models.UpcomingMeal) (string, error) {
	args := m.Called(ctx, meal)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) ListUpcomingMeals(ctx context.Context) ([]*models.UpcomingMeal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.UpcomingMeal), args.Error(1)
}

func (m *MockRepository) ToggleUpcomingMealLike(ctx context.Context, id, userUID string, liked bool) (int, error) {
	args := m.Called(ctx, id, userUID, liked)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) CreateProductionMeal(ctx context.Context, meal models.ProductionMeal) (string, error) {
	args := m.Called(ctx, meal)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) ListProductionMeals(ctx context.Context) ([]*models.ProductionMeal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ProductionMeal), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	if meal, ok := args.Get(2).(*models.Meal); ok {
		*(result.(**models.Meal)) = meal
	}
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestService_Read_CacheMiss(t *testing.T) {
	repo := new(MockRepository)
	cache := new(MockCache)

	meal := &models.Meal{ID: "meal-1", Name: "Plov"}

	cache.On("Get", "meal:meal-1", mock.Anything).Return(false, nil, nil).Once()
	repo.On("ReadMeal", mock.Anything, "meal-1").Return(meal, nil).Once()
	cache.On("Set", "meal:meal-1", meal, time.Hour).Return(nil).Once()

	service := New(repo, cache, newNoopLogger())

	result, err := service.Read(context.Background(), "meal-1")

	assert.NoError(t, err)
	assert.Equal(t, meal, result)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestService_Read_CacheHit(t *testing.T) {
	repo := new(MockRepository)
	cache := new(MockCache)

	meal := &models.Meal{ID: "meal-1", Name: "Plov"}

	cache.On("Get", "meal:meal-1", mock.Anything).Return(true, nil, meal).Once()

	service := New(repo, cache, newNoopLogger())

	result, err := service.Read(context.Background(), "meal-1")

	assert.NoError(t, err)
	assert.Equal(t, meal, result)
	// Репозиторий не вызывается при попадании в кеш
	repo.AssertNotCalled(t, "ReadMeal")
	cache.AssertExpectations(t)
}

func TestService_Like(t *testing.T) {
	tests := []struct {
		name          string
		liked         bool
		expectedDelta int
	}{
		{name: "лайк увеличивает счётчик", liked: true, expectedDelta: 1},
		{name: "снятие лайка уменьшает счётчик", liked: false, expectedDelta: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			cache := new(MockCache)

			repo.On("ChangeMealLikes", mock.Anything, "meal-1", tt.expectedDelta).Return(1, nil).Once()
			cache.On("Invalidate", "meal:meal-1").Return(nil).Once()

			service := New(repo, cache, newNoopLogger())

			count, err := service.Like(context.Background(), "meal-1", tt.liked)

			assert.NoError(t, err)
			assert.Equal(t, 1, count)
			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestService_Update_InvalidatesCache(t *testing.T) {
	repo := new(MockRepository)
	cache := new(MockCache)

	repo.On("UpdateMeal", mock.Anything, mock.Anything, "meal-1").Return(1, nil).Once()
	cache.On("Invalidate", "meal:meal-1").Return(nil).Once()

	service := New(repo, cache, newNoopLogger())

	count, err := service.Update(context.Background(), models.DummyMeal{Name: "Plov", Category: "lunch", Price: 10}, "meal-1")

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestService_AddToProduction(t *testing.T) {
	repo := new(MockRepository)
	cache := new(MockCache)

	all := []*models.ProductionMeal{
		{ID: "prod-1", Name: "Plov"},
	}

	repo.On("CreateProductionMeal", mock.Anything, mock.MatchedBy(func(m models.ProductionMeal) bool {
		return m.Name == "Plov" && !m.AddedAt.IsZero()
	})).Return("prod-1", nil).Once()
	repo.On("ListProductionMeals", mock.Anything).Return(all, nil).Once()

	service := New(repo, cache, newNoopLogger())

	id, meals, err := service.AddToProduction(context.Background(), models.DummyMeal{
		Name:     "Plov",
		Category: "lunch",
		Price:    10,
	})

	assert.NoError(t, err)
	assert.Equal(t, "prod-1", id)
	assert.Equal(t, all, meals)
	repo.AssertExpectations(t)
}
