package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/class-marketplace/internal/domain"
)

// ClassRepository defines persistence access for catalog classes.
type ClassRepository interface {
	Create(ctx context.Context, class *domain.Class) error
	Delete(ctx context.Context, id string) error
	ListByEnrollment(ctx context.Context) ([]*domain.Class, error)
}

type classRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository returns a Postgres-backed implementation.
func NewClassRepository(pool *pgxpool.Pool) ClassRepository {
	return &classRepository{pool: pool}
}

func (r *classRepository) Create(ctx context.Context, class *domain.Class) error {
	const query = `
        INSERT INTO classes (name, image, instructor_name, instructor_email, available_seats, enrolled_students, price)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		class.Name,
		class.Image,
		class.InstructorName,
		class.InstructorEmail,
		class.AvailableSeats,
		class.EnrolledStudents,
		class.Price,
	).Scan(&class.ID, &class.CreatedAt)
}

func (r *classRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM classes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListByEnrollment returns all classes, most enrolled first.
func (r *classRepository) ListByEnrollment(ctx context.Context) ([]*domain.Class, error) {
	const query = `
        SELECT id, name, image, instructor_name, instructor_email, available_seats, enrolled_students, price, created_at
        FROM classes ORDER BY enrolled_students DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*domain.Class
	for rows.Next() {
		var class domain.Class
		if err := rows.Scan(
			&class.ID,
			&class.Name,
			&class.Image,
			&class.InstructorName,
			&class.InstructorEmail,
			&class.AvailableSeats,
			&class.EnrolledStudents,
			&class.Price,
			&class.CreatedAt,
		); err != nil {
			return nil, err
		}
		classes = append(classes, &class)
	}
	return classes, rows.Err()
}
