package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/logger"
	"github.com/campusconnect/backend/internal/model"
)

// StudentCourses splits the catalog from one student's point of view.
type StudentCourses struct {
	Enrolled  []model.Course `json:"enrolled"`
	Available []model.Course `json:"available"`
}

// CatalogService serves course browsing and catalog seeding.
type CatalogService struct {
	tx      Transactor
	courses CourseStore
	log     zerolog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(tx Transactor, courses CourseStore, log zerolog.Logger) *CatalogService {
	return &CatalogService{tx: tx, courses: courses, log: logger.Component(log, "catalog")}
}

func (s *CatalogService) Search(ctx context.Context, f model.CourseFilter) ([]model.Course, error) {
	courses, err := s.courses.Search(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("search courses: %w", err)
	}
	return courses, nil
}

func (s *CatalogService) Enrolled(ctx context.Context, studentID string) ([]model.Course, error) {
	courses, err := s.courses.ListEnrolled(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list enrolled: %w", err)
	}
	return courses, nil
}

// ForStudent returns the student's enrolled and still-available courses.
func (s *CatalogService) ForStudent(ctx context.Context, studentID string) (*StudentCourses, error) {
	enrolled, err := s.Enrolled(ctx, studentID)
	if err != nil {
		return nil, err
	}
	available, err := s.courses.ListAvailable(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list available: %w", err)
	}
	return &StudentCourses{Enrolled: enrolled, Available: available}, nil
}

// Seed upserts the given courses in order. Seat usage of existing rows is kept.
func (s *CatalogService) Seed(ctx context.Context, courses []model.Course) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		for i := range courses {
			if err := s.courses.Upsert(ctx, &courses[i]); err != nil {
				return fmt.Errorf("upsert course %s: %w", courses[i].ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info().Int("courses", len(courses)).Msg("Catalog seeded")
	return nil
}
