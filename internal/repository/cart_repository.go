package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/class-marketplace/internal/domain"
)

// CartRepository defines persistence access for cart items.
type CartRepository interface {
	Create(ctx context.Context, item *domain.CartItem) error
	FindByOwner(ctx context.Context, email string) ([]*domain.CartItem, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type cartRepository struct {
	pool *pgxpool.Pool
}

// NewCartRepository returns a Postgres-backed implementation.
func NewCartRepository(pool *pgxpool.Pool) CartRepository {
	return &cartRepository{pool: pool}
}

func (r *cartRepository) Create(ctx context.Context, item *domain.CartItem) error {
	const query = `
        INSERT INTO cart_items (owner_email, class_id, class_name, price)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		item.OwnerEmail,
		item.ClassID,
		item.ClassName,
		item.Price,
	).Scan(&item.ID, &item.CreatedAt)
}

func (r *cartRepository) FindByOwner(ctx context.Context, email string) ([]*domain.CartItem, error) {
	const query = `
        SELECT id, owner_email, class_id, class_name, price, created_at
        FROM cart_items WHERE owner_email=$1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.ID,
			&item.OwnerEmail,
			&item.ClassID,
			&item.ClassName,
			&item.Price,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (r *cartRepository) DeleteByID(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteByIDs removes every item whose id is in the set and returns
// the number actually removed. Missing ids are not an error.
func (r *cartRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *cartRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cart_items`).Scan(&count)
	return count, err
}
