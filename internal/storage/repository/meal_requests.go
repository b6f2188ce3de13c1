package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/meal-aggregator/internal/models"
)

// CreateMealRequest сохраняет заявку на блюдо и возвращает её ID.
func (s *Storage) CreateMealRequest(ctx context.Context, req models.MealRequest) (string, error) {
	const op = "storage.CreateMealRequest"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID string
	query := `INSERT INTO meal_requests (meal_id, meal_name, user_email, user_name, status, requested_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		req.MealID, req.MealName, req.UserEmail, req.UserName,
		req.Status, req.RequestedAt).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListMealRequests возвращает заявки, опционально фильтруя по email заказчика.
// Пустой userEmail означает выборку всех заявок.
func (s *Storage) ListMealRequests(ctx context.Context, userEmail string) ([]*models.MealRequest, error) {
	const op = "storage.ListMealRequests"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, meal_id, meal_name, user_email, user_name, status, requested_at
			  FROM meal_requests
			  WHERE ($1 = '' OR user_email = $1)
			  ORDER BY requested_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userEmail)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []*models.MealRequest
	for rows.Next() {
		var m models.MealRequest
		if err = rows.Scan(&m.ID, &m.MealID, &m.MealName, &m.UserEmail,
			&m.UserName, &m.Status, &m.RequestedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// MarkMealRequestDelivered переводит заявку в статус delivered
// и возвращает количество обновлённых записей.
func (s *Storage) MarkMealRequestDelivered(ctx context.Context, id string) (int, error) {
	const op = "storage.MarkMealRequestDelivered"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE meal_requests
			  SET status = $1
			  WHERE id = $2`
	res, err := s.DB.ExecContext(ctx, query, models.RequestStatusDelivered, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(count), nil
}

// RemoveMealRequest удаляет заявку по ID и возвращает количество
// удалённых записей.
func (s *Storage) RemoveMealRequest(ctx context.Context, id string) (int, error) {
	const op = "storage.RemoveMealRequest"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM meal_requests WHERE id = $1`
	res, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(count), nil
}
