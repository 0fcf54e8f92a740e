package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/class-marketplace/internal/domain"
)

// PaymentRepository defines persistence access for payment records.
// Records are append-only; there is no update or delete.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByPayer(ctx context.Context, email string) ([]*domain.Payment, error)
	Count(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
}

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository returns a Postgres-backed implementation.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	const query = `
        INSERT INTO payments (payer_email, amount, cart_item_ids)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		payment.PayerEmail,
		payment.Amount,
		payment.CartItemIDs,
	).Scan(&payment.ID, &payment.CreatedAt)
}

func (r *paymentRepository) ListByPayer(ctx context.Context, email string) ([]*domain.Payment, error) {
	const query = `
        SELECT id, payer_email, amount, cart_item_ids, created_at
        FROM payments WHERE payer_email=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.PayerEmail,
			&payment.Amount,
			&payment.CartItemIDs,
			&payment.CreatedAt,
		); err != nil {
			return nil, err
		}
		payments = append(payments, &payment)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM payments`).Scan(&count)
	return count, err
}

func (r *paymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM payments`).Scan(&total)
	return total, err
}
