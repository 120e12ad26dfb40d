package memory

import (
	"context"

	"github.com/campusconnect/backend/internal/model"
	"github.com/campusconnect/backend/internal/service"
)

type StudentRepository struct {
	db *DB
}

var _ service.StudentStore = (*StudentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) Upsert(_ context.Context, s *model.Student) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := r.db.now()
	row, ok := r.db.students[s.ID]
	if !ok {
		row = model.Student{ID: s.ID, CreatedAt: now}
	}
	row.Name = s.Name
	row.UpdatedAt = now
	r.db.students[s.ID] = row

	s.CreatedAt, s.UpdatedAt = row.CreatedAt, row.UpdatedAt
	return nil
}
