package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/meal-aggregator/internal/models"
)

// CreatePayment сохраняет запись о завершённом платеже и возвращает её ID.
func (s *Storage) CreatePayment(ctx context.Context, payment models.Payment) (string, error) {
	const op = "storage.CreatePayment"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID string
	query := `INSERT INTO payments (email, amount, currency, intent_id, plan_name, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		payment.Email, payment.Amount, payment.Currency, payment.IntentID,
		payment.PlanName, payment.CreatedAt).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// FindLatestPayment возвращает самый свежий платёж пользователя по email.
// Отсутствие платежей отражается ошибкой ErrNotFound.
func (s *Storage) FindLatestPayment(ctx context.Context, email string) (*models.Payment, error) {
	const op = "storage.FindLatestPayment"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, amount, currency, intent_id, plan_name, created_at
			  FROM payments
			  WHERE email = $1
			  ORDER BY created_at DESC
			  LIMIT 1`
	var p models.Payment
	row := s.DB.QueryRowContext(ctx, query, email)
	if err := row.Scan(&p.ID, &p.Email, &p.Amount, &p.Currency,
		&p.IntentID, &p.PlanName, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// ListPaymentsByEmail возвращает платежи пользователя от новых к старым.
func (s *Storage) ListPaymentsByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	const op = "storage.ListPaymentsByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, amount, currency, intent_id, plan_name, created_at
			  FROM payments
			  WHERE email = $1
			  ORDER BY created_at DESC`
	return s.listPayments(ctx, op, query, email)
}

// ListAllPayments возвращает все платежи от новых к старым.
func (s *Storage) ListAllPayments(ctx context.Context) ([]*models.Payment, error) {
	const op = "storage.ListAllPayments"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, amount, currency, intent_id, plan_name, created_at
			  FROM payments
			  ORDER BY created_at DESC`
	return s.listPayments(ctx, op, query)
}

func (s *Storage) listPayments(ctx context.Context, op, query string, args ...any) ([]*models.Payment, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []*models.Payment
	for rows.Next() {
		var p models.Payment
		if err = rows.Scan(&p.ID, &p.Email, &p.Amount, &p.Currency,
			&p.IntentID, &p.PlanName, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
