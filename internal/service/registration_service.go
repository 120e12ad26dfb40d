package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/logger"
	"github.com/campusconnect/backend/internal/model"
	"github.com/campusconnect/backend/internal/repository"
)

// RegistrationService applies enroll and drop actions and keeps seat counts
// in step with the registration rows.
type RegistrationService struct {
	tx            Transactor
	courses       CourseStore
	registrations RegistrationStore
	log           zerolog.Logger
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(tx Transactor, courses CourseStore, registrations RegistrationStore, log zerolog.Logger) *RegistrationService {
	return &RegistrationService{
		tx:            tx,
		courses:       courses,
		registrations: registrations,
		log:           logger.Component(log, "registration"),
	}
}

// Register enrolls a student. The course row stays locked while the
// prerequisite and capacity checks run, so the seat count cannot pass max.
func (s *RegistrationService) Register(ctx context.Context, studentID, courseID string) (*model.Registration, error) {
	var reg *model.Registration

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		course, err := s.courses.LockByID(ctx, courseID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrCourseNotFound
			}
			return fmt.Errorf("lock course: %w", err)
		}

		if course.HasPrereq() {
			ok, err := s.registrations.Exists(ctx, studentID, *course.PrereqID)
			if err != nil {
				return fmt.Errorf("check prerequisite: %w", err)
			}
			if !ok {
				return &PrerequisiteError{CourseID: course.ID, PrereqID: *course.PrereqID}
			}
		}

		if course.IsFull() {
			return ErrCourseFull
		}

		r := &model.Registration{StudentID: studentID, CourseID: course.ID}
		if err := s.registrations.Create(ctx, r); err != nil {
			if errors.Is(err, repository.ErrDuplicateRegistration) {
				return ErrAlreadyRegistered
			}
			return fmt.Errorf("create registration: %w", err)
		}

		if err := s.courses.IncrementSeats(ctx, course.ID); err != nil {
			return fmt.Errorf("increment seats: %w", err)
		}

		reg = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("student_id", studentID).Str("course_id", courseID).Msg("Student registered")
	return reg, nil
}

// Drop removes a registration. It reports whether one existed; seats are
// released only in that case. The course row is locked first, in the same
// order as Register.
func (s *RegistrationService) Drop(ctx context.Context, studentID, courseID string) (bool, error) {
	var dropped bool

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.courses.LockByID(ctx, courseID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil
			}
			return fmt.Errorf("lock course: %w", err)
		}

		deleted, err := s.registrations.Delete(ctx, studentID, courseID)
		if err != nil {
			return fmt.Errorf("delete registration: %w", err)
		}
		if !deleted {
			return nil
		}

		if err := s.courses.DecrementSeats(ctx, courseID); err != nil {
			return fmt.Errorf("decrement seats: %w", err)
		}
		dropped = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if dropped {
		s.log.Info().Str("student_id", studentID).Str("course_id", courseID).Msg("Student dropped course")
	}
	return dropped, nil
}
