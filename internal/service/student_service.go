package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/campusconnect/backend/internal/model"
)

// StudentService handles student sign-in records.
type StudentService struct {
	students StudentStore
}

// NewStudentService creates a new StudentService.
func NewStudentService(students StudentStore) *StudentService {
	return &StudentService{students: students}
}

// Login creates the student on first sight and refreshes the display name after.
func (s *StudentService) Login(ctx context.Context, studentID, name string) (*model.Student, error) {
	st := &model.Student{ID: strings.TrimSpace(studentID), Name: strings.TrimSpace(name)}
	if err := s.students.Upsert(ctx, st); err != nil {
		return nil, fmt.Errorf("upsert student: %w", err)
	}
	return st, nil
}
