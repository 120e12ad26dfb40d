package memory

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/campusconnect/backend/internal/model"
	"github.com/campusconnect/backend/internal/repository"
	"github.com/campusconnect/backend/internal/service"
)

type CourseRepository struct {
	db *DB
}

var _ service.CourseStore = (*CourseRepository)(nil) // interface compliance check

func NewCourseRepository(db *DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func sortCourses(courses []model.Course) {
	sort.Slice(courses, func(i, j int) bool {
		a, b := courses[i], courses[j]
		if a.Dept != b.Dept {
			return a.Dept < b.Dept
		}
		if a.Number != b.Number {
			return a.Number < b.Number
		}
		return a.ID < b.ID
	})
}

func (r *CourseRepository) filter(keep func(c model.Course) bool) []model.Course {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	courses := []model.Course{}
	for _, c := range r.db.courses {
		if keep(c) {
			courses = append(courses, c)
		}
	}
	sortCourses(courses)
	return courses
}

func (r *CourseRepository) GetByID(_ context.Context, id string) (*model.Course, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	c, ok := r.db.courses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

// LockByID is GetByID; transactions are already serialized.
func (r *CourseRepository) LockByID(ctx context.Context, id string) (*model.Course, error) {
	return r.GetByID(ctx, id)
}

func (r *CourseRepository) Search(_ context.Context, f model.CourseFilter) ([]model.Course, error) {
	dept := strings.ToUpper(strings.TrimSpace(f.Dept))
	number := strings.TrimSpace(f.Number)
	instructor := strings.ToLower(strings.TrimSpace(f.Instructor))

	return r.filter(func(c model.Course) bool {
		if dept != "" && !strings.Contains(strings.ToUpper(c.Dept), dept) {
			return false
		}
		if number != "" && !strings.Contains(strconv.Itoa(c.Number), number) {
			return false
		}
		if instructor != "" && !strings.Contains(strings.ToLower(c.Instructor), instructor) {
			return false
		}
		return !f.OpenOnly || c.SeatsUsed < c.MaxSeats
	}), nil
}

func (r *CourseRepository) ListEnrolled(_ context.Context, studentID string) ([]model.Course, error) {
	enrolled := r.db.enrolledSet(studentID)
	return r.filter(func(c model.Course) bool { return enrolled[c.ID] }), nil
}

func (r *CourseRepository) ListAvailable(_ context.Context, studentID string) ([]model.Course, error) {
	enrolled := r.db.enrolledSet(studentID)
	return r.filter(func(c model.Course) bool { return !enrolled[c.ID] }), nil
}

func (r *CourseRepository) adjust(id string, delta int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	c, ok := r.db.courses[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.SeatsUsed += delta
	if c.SeatsUsed < 0 {
		c.SeatsUsed = 0
	}
	c.UpdatedAt = r.db.now()
	r.db.courses[id] = c
	return nil
}

func (r *CourseRepository) IncrementSeats(_ context.Context, id string) error {
	return r.adjust(id, 1)
}

func (r *CourseRepository) DecrementSeats(_ context.Context, id string) error {
	return r.adjust(id, -1)
}

func (r *CourseRepository) Upsert(_ context.Context, c *model.Course) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := r.db.now()
	row := *c
	if existing, ok := r.db.courses[c.ID]; ok {
		row.SeatsUsed = existing.SeatsUsed
		row.CreatedAt = existing.CreatedAt
	} else {
		row.CreatedAt = now
	}
	row.UpdatedAt = now
	r.db.courses[c.ID] = row
	return nil
}

func (db *DB) enrolledSet(studentID string) map[string]bool {
	db.mu.RLock()
	defer db.mu.RUnlock()

	set := make(map[string]bool)
	for _, reg := range db.registrations {
		if reg.StudentID == studentID {
			set[reg.CourseID] = true
		}
	}
	return set
}
