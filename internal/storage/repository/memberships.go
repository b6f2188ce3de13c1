package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/magabrotheeeer/meal-aggregator/internal/models"
)

// ListMembershipPlans возвращает тарифные планы, опционально фильтруя
// по названию плана. Пустой planName означает выборку всех планов.
func (s *Storage) ListMembershipPlans(ctx context.Context, planName string) ([]*models.MembershipPlan, error) {
	const op = "storage.ListMembershipPlans"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, plan_name, price, badge, perks
			  FROM membership_plans
			  WHERE ($1 = '' OR plan_name = $1)
			  ORDER BY price`
	rows, err := s.DB.QueryContext(ctx, query, planName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []*models.MembershipPlan
	for rows.Next() {
		var p models.MembershipPlan
		var perks []byte
		if err = rows.Scan(&p.ID, &p.PlanName, &p.Price, &p.Badge, &perks); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if len(perks) > 0 {
			if err = json.Unmarshal(perks, &p.Perks); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}
		result = append(result, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
