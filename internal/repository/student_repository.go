package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusconnect/backend/internal/model"
)

// StudentRepository handles student data access.
type StudentRepository struct {
	base
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{base{pool: pool}}
}

// Upsert creates the student or updates the stored name.
func (r *StudentRepository) Upsert(ctx context.Context, s *model.Student) error {
	return r.conn(ctx).QueryRow(ctx,
		`INSERT INTO students (student_id, name) VALUES ($1, $2)
		 ON CONFLICT (student_id) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()
		 RETURNING created_at, updated_at`,
		s.ID, s.Name,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
}
