package memory

import (
	"context"

	"github.com/campusconnect/backend/internal/model"
	"github.com/campusconnect/backend/internal/service"
)

type DashboardRepository struct {
	db *DB
}

var _ service.DashboardStore = (*DashboardRepository)(nil) // interface compliance check

func NewDashboardRepository(db *DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) GetSummaryCounts(context.Context) (model.DashboardSummary, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var collected float64
	for _, p := range r.db.payments {
		collected += p.AmountPaid
	}
	return model.DashboardSummary{
		TotalCourses:       len(r.db.courses),
		TotalStudents:      len(r.db.students),
		TotalRegistrations: len(r.db.registrations),
		TotalCollected:     cents(collected),
	}, nil
}

func (r *DashboardRepository) GetCourseSeats(context.Context) ([]model.CourseSeats, error) {
	r.db.mu.RLock()
	courses := make([]model.Course, 0, len(r.db.courses))
	for _, c := range r.db.courses {
		courses = append(courses, c)
	}
	r.db.mu.RUnlock()

	sortCourses(courses)
	seats := make([]model.CourseSeats, 0, len(courses))
	for _, c := range courses {
		seats = append(seats, model.CourseSeats{
			ID:         c.ID,
			Dept:       c.Dept,
			Number:     c.Number,
			Title:      c.Title,
			Instructor: c.Instructor,
			SeatsUsed:  c.SeatsUsed,
			MaxSeats:   c.MaxSeats,
		})
	}
	return seats, nil
}
