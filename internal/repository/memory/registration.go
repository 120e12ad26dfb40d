package memory

import (
	"context"
	"sort"

	"github.com/campusconnect/backend/internal/model"
	"github.com/campusconnect/backend/internal/repository"
	"github.com/campusconnect/backend/internal/service"
)

type RegistrationRepository struct {
	db *DB
}

var _ service.RegistrationStore = (*RegistrationRepository)(nil) // interface compliance check

func NewRegistrationRepository(db *DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) indexOf(studentID, courseID string) int {
	for i, reg := range r.db.registrations {
		if reg.StudentID == studentID && reg.CourseID == courseID {
			return i
		}
	}
	return -1
}

func (r *RegistrationRepository) Exists(_ context.Context, studentID, courseID string) (bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.indexOf(studentID, courseID) >= 0, nil
}

func (r *RegistrationRepository) Create(_ context.Context, reg *model.Registration) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.indexOf(reg.StudentID, reg.CourseID) >= 0 {
		return repository.ErrDuplicateRegistration
	}
	if _, ok := r.db.courses[reg.CourseID]; !ok {
		return repository.ErrNotFound
	}

	r.db.regPK++
	reg.ID = r.db.regPK
	reg.RegisteredAt = r.db.now()
	r.db.registrations = append(r.db.registrations, *reg)
	return nil
}

func (r *RegistrationRepository) Delete(_ context.Context, studentID, courseID string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	i := r.indexOf(studentID, courseID)
	if i < 0 {
		return false, nil
	}
	r.db.registrations = append(r.db.registrations[:i:i], r.db.registrations[i+1:]...)
	return true, nil
}

func (r *RegistrationRepository) ListByCourse(_ context.Context, courseID string) ([]model.RosterEntry, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	roster := []model.RosterEntry{}
	for _, reg := range r.db.registrations {
		if reg.CourseID != courseID {
			continue
		}
		roster = append(roster, model.RosterEntry{
			StudentID:    reg.StudentID,
			Name:         r.db.students[reg.StudentID].Name,
			RegisteredAt: reg.RegisteredAt,
		})
	}
	sort.Slice(roster, func(i, j int) bool { return roster[i].StudentID < roster[j].StudentID })
	return roster, nil
}
