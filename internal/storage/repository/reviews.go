package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/meal-aggregator/internal/models"
)

// CreateReview сохраняет новый отзыв и возвращает его ID.
func (s *Storage) CreateReview(ctx context.Context, review models.Review) (string, error) {
	const op = "storage.CreateReview"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID string
	query := `INSERT INTO reviews (meal_id, title, user_email, user_name, rating, text, posted_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		review.MealID, review.Title, review.UserEmail, review.UserName,
		review.Rating, review.Text, review.PostedAt).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListReviews возвращает отзывы, опционально фильтруя по автору
// или названию блюда. Пустые поля фильтра игнорируются.
func (s *Storage) ListReviews(ctx context.Context, filter models.ReviewFilter) ([]*models.Review, error) {
	const op = "storage.ListReviews"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, meal_id, title, user_email, user_name, rating, text, posted_at
			  FROM reviews
			  WHERE ($1 = '' OR user_email = $1)
			    AND ($2 = '' OR title = $2)
			  ORDER BY posted_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, filter.UserEmail, filter.Title)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []*models.Review
	for rows.Next() {
		var rv models.Review
		if err = rows.Scan(&rv.ID, &rv.MealID, &rv.Title, &rv.UserEmail,
			&rv.UserName, &rv.Rating, &rv.Text, &rv.PostedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &rv)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ReadReview возвращает отзыв по ID.
func (s *Storage) ReadReview(ctx context.Context, id string) (*models.Review, error) {
	const op = "storage.ReadReview"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, meal_id, title, user_email, user_name, rating, text, posted_at
			  FROM reviews
			  WHERE id = $1`
	var rv models.Review
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&rv.ID, &rv.MealID, &rv.Title, &rv.UserEmail,
		&rv.UserName, &rv.Rating, &rv.Text, &rv.PostedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &rv, nil
}

// UpdateReviewText обновляет текст отзыва по ID и возвращает количество
// обновлённых записей.
func (s *Storage) UpdateReviewText(ctx context.Context, id, text string) (int, error) {
	const op = "storage.UpdateReviewText"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE reviews
			  SET text = $1
			  WHERE id = $2`
	res, err := s.DB.ExecContext(ctx, query, text, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(count), nil
}

// RemoveReview удаляет отзыв по ID и возвращает количество удалённых записей.
func (s *Storage) RemoveReview(ctx context.Context, id string) (int, error) {
	const op = "storage.RemoveReview"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM reviews WHERE id = $1`
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
