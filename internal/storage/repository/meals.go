package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/meal-aggregator/internal/models"
)

// CreateMeal сохраняет новое блюдо и возвращает его ID.
func (s *Storage) CreateMeal(ctx context.Context, meal models.Meal) (string, error) {
	const op = "storage.CreateMeal"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	ingredients, err := json.Marshal(meal.Ingredients)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var newID string
	query := `INSERT INTO meals (name, category, image, ingredients, description,
			      price, rating, likes, reviews_count, admin_name, admin_email, post_time)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		meal.Name, meal.Category, meal.Image, ingredients, meal.Description,
		meal.Price, meal.Rating, meal.Likes, meal.ReviewsCount,
		meal.AdminName, meal.AdminEmail, meal.PostTime).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListMeals возвращает блюда с поиском по названию без учёта регистра
// и сортировкой по цене.
func (s *Storage) ListMeals(ctx context.Context, filter models.MealFilter) ([]*models.Meal, error) {
	const op = "storage.ListMeals"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	order := "DESC"
	if filter.PriceSort == "asc" {
		order = "ASC"
	}
	query := fmt.Sprintf(`SELECT id, name, category, image, ingredients, description,
			      price, rating, likes, reviews_count, admin_name, admin_email, post_time
			  FROM meals
			  WHERE name ILIKE '%%' || $1 || '%%'
			  ORDER BY price %s`, order)
	rows, err := s.DB.QueryContext(ctx, query, filter.Search)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []*models.Meal
	for rows.Next() {
		meal, err := scanMeal(rows)
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

// ReadMeal возвращает блюдо по ID.
func (s *Storage) ReadMeal(ctx context.Context, id string) (*models.Meal, error) {
	const op = "storage.ReadMeal"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, category, image, ingredients, description,
			      price, rating, likes, reviews_count, admin_name, admin_email, post_time
			  FROM meals
			  WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)
	meal, err := scanMeal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return meal, nil
}

// UpdateMeal обновляет все поля блюда по ID и возвращает
// количество обновлённых записей.
func (s *Storage) UpdateMeal(ctx context.Context, meal models.Meal, id string) (int, error) {
	const op = "storage.UpdateMeal"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	ingredients, err := json.Marshal(meal.Ingredients)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE meals
			  SET name = $1, category = $2, image = $3, ingredients = $4,
			      description = $5, price = $6, rating = $7,
			      admin_name = $8, admin_email = $9
			  WHERE id = $10`
	res, err := s.DB.ExecContext(ctx, query,
		meal.Name, meal.Category, meal.Image, ingredients, meal.Description,
		meal.Price, meal.Rating, meal.AdminName, meal.AdminEmail, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(count), nil
}

// RemoveMeal удаляет блюдо по ID и возвращает количество удалённых записей.
func (s *Storage) RemoveMeal(ctx context.Context, id string) (int, error) {
	const op = "storage.RemoveMeal"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM meals WHERE id = $1`
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

// ChangeMealLikes изменяет количество лайков блюда на delta.
func (s *Storage) ChangeMealLikes(ctx context.Context, id string, delta int) (int, error) {
	const op = "storage.ChangeMealLikes"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE meals SET likes = likes + $1 WHERE id = $2`
	res, err := s.DB.ExecContext(ctx, query, delta, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(count), nil
}

// IncrementMealReviews увеличивает счётчик отзывов блюда на единицу.
func (s *Storage) IncrementMealReviews(ctx context.Context, id string) (int, error) {
	const op = "storage.IncrementMealReviews"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE meals SET reviews_count = reviews_count + 1 WHERE id = $1`
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeal(row rowScanner) (*models.Meal, error) {
	var m models.Meal
	var ingredients []byte
	if err := row.Scan(&m.ID, &m.Name, &m.Category, &m.Image, &ingredients,
		&m.Description, &m.Price, &m.Rating, &m.Likes, &m.ReviewsCount,
		&m.AdminName, &m.AdminEmail, &m.PostTime); err != nil {
		return nil, err
	}
	if len(ingredients) > 0 {
		if err := json.Unmarshal(ingredients, &m.Ingredients); err != nil {
			return nil, err
		}
	}
	return &m, nil
}
