package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/class-marketplace/internal/domain"
)

// InstructorRepository defines read access for instructors.
type InstructorRepository interface {
	List(ctx context.Context) ([]*domain.Instructor, error)
}

type instructorRepository struct {
	pool *pgxpool.Pool
}

// NewInstructorRepository returns a Postgres-backed implementation.
func NewInstructorRepository(pool *pgxpool.Pool) InstructorRepository {
	return &instructorRepository{pool: pool}
}

func (r *instructorRepository) List(ctx context.Context) ([]*domain.Instructor, error) {
	const query = `
        SELECT id, name, email, image, num_classes
        FROM instructors ORDER BY num_classes DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instructors []*domain.Instructor
	for rows.Next() {
		var instructor domain.Instructor
		if err := rows.Scan(
			&instructor.ID,
			&instructor.Name,
			&instructor.Email,
			&instructor.Image,
			&instructor.NumClasses,
		); err != nil {
			return nil, err
		}
		instructors = append(instructors, &instructor)
	}
	return instructors, rows.Err()
}
