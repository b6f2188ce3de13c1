// Package membership содержит бизнес-логику выдачи тарифных планов
// с кешированием: справочник планов меняется редко и читается часто.
package membership

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/meal-aggregator/internal/models"
)

// PlanRepository определяет методы для работы с тарифными планами в хранилище.
type PlanRepository interface {
	// ListMembershipPlans возвращает планы с опциональным фильтром по имени.
	ListMembershipPlans(ctx context.Context, planName string) ([]*models.MembershipPlan, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// PlanService реализует выдачу тарифных планов с кешированием.
type PlanService struct {
	repo  PlanRepository
	cache Cache
	log   *slog.Logger
}

// New создает новый экземпляр PlanService.
func New(repo PlanRepository, cache Cache, log *slog.Logger) *PlanService {
	return &PlanService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// List возвращает тарифные планы, опционально фильтруя по имени плана,
// используя кеш или репозиторий.
func (s *PlanService) List(ctx context.Context, planName string) ([]*models.MembershipPlan, error) {
	var result []*models.MembershipPlan
	cacheKey := fmt.Sprintf("membership_plans:%s", planName)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}

	result, err = s.repo.ListMembershipPlans(ctx, planName)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache membership plans",
			slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}
