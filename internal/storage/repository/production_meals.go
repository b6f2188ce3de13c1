package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/meal-aggregator/internal/models"
)

// CreateProductionMeal добавляет позицию в производственный список кухни
// и возвращает её ID.
func (s *Storage) CreateProductionMeal(ctx context.Context, meal models.ProductionMeal) (string, error) {
	const op = "storage.CreateProductionMeal"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID string
	query := `INSERT INTO production_meals (name, category, image, price, added_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		meal.Name, meal.Category, meal.Image, meal.Price, meal.AddedAt).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListProductionMeals возвращает производственный список кухни.
func (s *Storage) ListProductionMeals(ctx context.Context) ([]*models.ProductionMeal, error) {
	const op = "storage.ListProductionMeals"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, category, image, price, added_at
			  FROM production_meals
			  ORDER BY added_at`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []*models.ProductionMeal
	for rows.Next() {
		var m models.ProductionMeal
		if err = rows.Scan(&m.ID, &m.Name, &m.Category, &m.Image, &m.Price, &m.AddedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
