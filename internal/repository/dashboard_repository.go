package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusconnect/backend/internal/model"
)

// DashboardRepository handles admin dashboard data access.
type DashboardRepository struct {
	base
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{base{pool: pool}}
}

// GetSummaryCounts retrieves the high-level metrics for the dashboard.
func (r *DashboardRepository) GetSummaryCounts(ctx context.Context) (model.DashboardSummary, error) {
	var s model.DashboardSummary
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM courses),
			(SELECT COUNT(*) FROM students),
			(SELECT COUNT(*) FROM registrations),
			(SELECT COALESCE(SUM(amount_paid), 0)::float8 FROM payments)`,
	).Scan(&s.TotalCourses, &s.TotalStudents, &s.TotalRegistrations, &s.TotalCollected)
	return s, err
}

// GetCourseSeats lists seat usage for every course.
func (r *DashboardRepository) GetCourseSeats(ctx context.Context) ([]model.CourseSeats, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT id, dept, number, title, instructor, seats_used, max_seats
		 FROM courses ORDER BY dept, number, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := []model.CourseSeats{}
	for rows.Next() {
		var s model.CourseSeats
		if err := rows.Scan(&s.ID, &s.Dept, &s.Number, &s.Title, &s.Instructor, &s.SeatsUsed, &s.MaxSeats); err != nil {
			return nil, err
		}
		seats = append(seats, s)
	}
	return seats, rows.Err()
}
