package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusconnect/backend/internal/model"
	"github.com/campusconnect/backend/internal/repository"
)

// AdminService builds the administrator views.
type AdminService struct {
	dashboard     DashboardStore
	courses       CourseStore
	registrations RegistrationStore
}

// NewAdminService creates a new AdminService.
func NewAdminService(dashboard DashboardStore, courses CourseStore, registrations RegistrationStore) *AdminService {
	return &AdminService{dashboard: dashboard, courses: courses, registrations: registrations}
}

// Dashboard returns seat usage per course plus the summary counters.
func (s *AdminService) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	summary, err := s.dashboard.GetSummaryCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("summary counts: %w", err)
	}
	seats, err := s.dashboard.GetCourseSeats(ctx)
	if err != nil {
		return nil, fmt.Errorf("course seats: %w", err)
	}
	return &model.Dashboard{Summary: summary, Courses: seats}, nil
}

// CourseRoster returns a course with its registered students.
func (s *AdminService) CourseRoster(ctx context.Context, courseID string) (*model.CourseRoster, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("get course: %w", err)
	}
	students, err := s.registrations.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	return &model.CourseRoster{Course: course, Students: students}, nil
}
