package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusconnect/backend/internal/model"
)

const courseColumns = `c.id, c.dept, c.number, c.title, c.credits, c.prereq_id, c.modality, c.max_seats,
	c.instructor, c.schedule_text, c.location, c.seats_used, c.tuition_fee::float8, c.created_at, c.updated_at`

// CourseRepository handles course catalog data access.
type CourseRepository struct {
	base
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{base{pool: pool}}
}

func scanCourse(row pgx.Row) (*model.Course, error) {
	c := &model.Course{}
	err := row.Scan(&c.ID, &c.Dept, &c.Number, &c.Title, &c.Credits, &c.PrereqID, &c.Modality, &c.MaxSeats,
		&c.Instructor, &c.ScheduleText, &c.Location, &c.SeatsUsed, &c.TuitionFee, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func collectCourses(rows pgx.Rows) ([]model.Course, error) {
	defer rows.Close()

	courses := []model.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *c)
	}
	return courses, rows.Err()
}

// GetByID retrieves a course by ID.
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*model.Course, error) {
	c, err := scanCourse(r.conn(ctx).QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses c WHERE c.id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

// LockByID retrieves a course and holds a row lock on it until the
// surrounding transaction ends.
func (r *CourseRepository) LockByID(ctx context.Context, id string) (*model.Course, error) {
	c, err := scanCourse(r.conn(ctx).QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses c WHERE c.id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

// Search filters the catalog. Department matches as an uppercase substring,
// number as a digit substring, instructor case-insensitively.
func (r *CourseRepository) Search(ctx context.Context, f model.CourseFilter) ([]model.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses c`
	var conds []string
	var args []any
	argIdx := 1

	if dept := strings.TrimSpace(f.Dept); dept != "" {
		conds = append(conds, `UPPER(c.dept) LIKE '%' || $`+strconv.Itoa(argIdx)+` || '%'`)
		args = append(args, escapeLike(strings.ToUpper(dept)))
		argIdx++
	}
	if number := strings.TrimSpace(f.Number); number != "" {
		conds = append(conds, `c.number::text LIKE '%' || $`+strconv.Itoa(argIdx)+` || '%'`)
		args = append(args, escapeLike(number))
		argIdx++
	}
	if instructor := strings.TrimSpace(f.Instructor); instructor != "" {
		conds = append(conds, `c.instructor ILIKE '%' || $`+strconv.Itoa(argIdx)+` || '%'`)
		args = append(args, escapeLike(instructor))
		argIdx++
	}
	if f.OpenOnly {
		conds = append(conds, `c.seats_used < c.max_seats`)
	}

	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	query += ` ORDER BY c.dept, c.number, c.id`

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectCourses(rows)
}

// ListEnrolled returns the courses a student is registered for.
func (r *CourseRepository) ListEnrolled(ctx context.Context, studentID string) ([]model.Course, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+courseColumns+`
		 FROM courses c
		 JOIN registrations reg ON reg.course_id = c.id
		 WHERE reg.student_id = $1
		 ORDER BY c.dept, c.number, c.id`, studentID)
	if err != nil {
		return nil, err
	}
	return collectCourses(rows)
}

// ListAvailable returns the courses a student is not registered for.
func (r *CourseRepository) ListAvailable(ctx context.Context, studentID string) ([]model.Course, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+courseColumns+`
		 FROM courses c
		 WHERE NOT EXISTS (
			SELECT 1 FROM registrations reg WHERE reg.course_id = c.id AND reg.student_id = $1
		 )
		 ORDER BY c.dept, c.number, c.id`, studentID)
	if err != nil {
		return nil, err
	}
	return collectCourses(rows)
}

// IncrementSeats takes one seat.
func (r *CourseRepository) IncrementSeats(ctx context.Context, id string) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE courses SET seats_used = seats_used + 1, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DecrementSeats releases one seat, never going below zero.
func (r *CourseRepository) DecrementSeats(ctx context.Context, id string) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE courses SET seats_used = GREATEST(seats_used - 1, 0), updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Upsert inserts a course or refreshes its catalog fields. seats_used is
// only written on insert.
func (r *CourseRepository) Upsert(ctx context.Context, c *model.Course) error {
	_, err := r.conn(ctx).Exec(ctx,
		`INSERT INTO courses (id, dept, number, title, credits, prereq_id, modality, max_seats,
			instructor, schedule_text, location, seats_used, tuition_fee)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (id) DO UPDATE SET
			dept = EXCLUDED.dept,
			number = EXCLUDED.number,
			title = EXCLUDED.title,
			credits = EXCLUDED.credits,
			prereq_id = EXCLUDED.prereq_id,
			modality = EXCLUDED.modality,
			max_seats = EXCLUDED.max_seats,
			instructor = EXCLUDED.instructor,
			schedule_text = EXCLUDED.schedule_text,
			location = EXCLUDED.location,
			tuition_fee = EXCLUDED.tuition_fee,
			updated_at = NOW()`,
		c.ID, c.Dept, c.Number, c.Title, c.Credits, c.PrereqID, c.Modality, c.MaxSeats,
		c.Instructor, c.ScheduleText, c.Location, c.SeatsUsed, c.TuitionFee)
	return err
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
