package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/magabrotheeeer/meal-aggregator/internal/models"
)

// CreateUpcomingMeal сохраняет блюдо будущего меню и возвращает его ID.
func (s *Storage) CreateUpcomingMeal(ctx context.Context, meal models.UpcomingMeal) (string, error) {
	const op = "storage.CreateUpcomingMeal"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	ingredients, err := json.Marshal(meal.Ingredients)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	likedUsers, err := json.Marshal(meal.LikedUsers)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var newID string
	query := `INSERT INTO upcoming_meals (name, category, image, ingredients, description,
			      price, rating, likes, liked_users, published, admin_name, admin_email, post_time)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		meal.Name, meal.Category, meal.Image, ingredients, meal.Description,
		meal.Price, meal.Rating, meal.Likes, likedUsers, meal.Published,
		meal.AdminName, meal.AdminEmail, meal.PostTime).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListUpcomingMeals возвращает все блюда будущего меню.
func (s *Storage) ListUpcomingMeals(ctx context.Context) ([]*models.UpcomingMeal, error) {
	const op = "storage.ListUpcomingMeals"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, category, image, ingredients, description,
			      price, rating, likes, liked_users, published, admin_name, admin_email, post_time
			  FROM upcoming_meals
			  ORDER BY likes DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []*models.UpcomingMeal
	for rows.Next() {
		meal, err := scanUpcomingMeal(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, meal)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ToggleUpcomingMealLike добавляет либо убирает uid пользователя из списка
// лайкнувших и соответственно меняет счётчик лайков. Выполняется в
// транзакции, чтобы список и счётчик не разошлись при конкурентных лайках.
func (s *Storage) ToggleUpcomingMealLike(ctx context.Context, id, userUID string, liked bool) (int, error) {
	const op = "storage.ToggleUpcomingMealLike"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var raw []byte
	var likes int
	row := tx.QueryRowContext(ctx,
		`SELECT liked_users, likes FROM upcoming_meals WHERE id = $1 FOR UPDATE`, id)
	if err := row.Scan(&raw, &likes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var likedUsers []string
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &likedUsers); err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	// liked — текущее состояние на клиенте: true снимает лайк, false ставит
	if liked {
		if slices.Contains(likedUsers, userUID) {
			likedUsers = slices.DeleteFunc(likedUsers, func(uid string) bool { return uid == userUID })
			likes--
		}
	} else if !slices.Contains(likedUsers, userUID) {
		likedUsers = append(likedUsers, userUID)
		likes++
	}

	updated, err := json.Marshal(likedUsers)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE upcoming_meals SET liked_users = $1, likes = $2 WHERE id = $3`,
		updated, likes, id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return likes, nil
}

func scanUpcomingMeal(row rowScanner) (*models.UpcomingMeal, error) {
	var m models.UpcomingMeal
	var ingredients, likedUsers []byte
	if err := row.Scan(&m.ID, &m.Name, &m.Category, &m.Image, &ingredients,
		&m.Description, &m.Price, &m.Rating, &m.Likes, &likedUsers, &m.Published,
		&m.AdminName, &m.AdminEmail, &m.PostTime); err != nil {
		return nil, err
	}
	if len(ingredients) > 0 {
		if err := json.Unmarshal(ingredients, &m.Ingredients); err != nil {
			return nil, err
		}
	}
	if len(likedUsers) > 0 {
		if err := json.Unmarshal(likedUsers, &m.LikedUsers); err != nil {
			return nil, err
		}
	}
	return &m, nil
}
