package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusconnect/backend/internal/model"
)

// RegistrationRepository handles student-course registrations.
type RegistrationRepository struct {
	base
}

// NewRegistrationRepository creates a new RegistrationRepository.
func NewRegistrationRepository(pool *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{base{pool: pool}}
}

// Exists reports whether the student is registered for the course.
func (r *RegistrationRepository) Exists(ctx context.Context, studentID, courseID string) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM registrations WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID,
	).Scan(&exists)
	return exists, err
}

// Create inserts a registration. A second registration for the same pair
// returns ErrDuplicateRegistration.
func (r *RegistrationRepository) Create(ctx context.Context, reg *model.Registration) error {
	err := r.conn(ctx).QueryRow(ctx,
		`INSERT INTO registrations (student_id, course_id) VALUES ($1, $2)
		 RETURNING reg_id, registered_at`,
		reg.StudentID, reg.CourseID,
	).Scan(&reg.ID, &reg.RegisteredAt)
	if isUniqueViolation(err, registrationUniqueConstraint) {
		return ErrDuplicateRegistration
	}
	return err
}

// Delete removes a registration and reports whether a row existed.
func (r *RegistrationRepository) Delete(ctx context.Context, studentID, courseID string) (bool, error) {
	tag, err := r.conn(ctx).Exec(ctx,
		`DELETE FROM registrations WHERE student_id = $1 AND course_id = $2`, studentID, courseID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListByCourse returns the roster of a course ordered by student id.
func (r *RegistrationRepository) ListByCourse(ctx context.Context, courseID string) ([]model.RosterEntry, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT reg.student_id, COALESCE(s.name, ''), reg.registered_at
		 FROM registrations reg
		 LEFT JOIN students s ON s.student_id = reg.student_id
		 WHERE reg.course_id = $1
		 ORDER BY reg.student_id`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roster := []model.RosterEntry{}
	for rows.Next() {
		var e model.RosterEntry
		if err := rows.Scan(&e.StudentID, &e.Name, &e.RegisteredAt); err != nil {
			return nil, err
		}
		roster = append(roster, e)
	}
	return roster, rows.Err()
}
