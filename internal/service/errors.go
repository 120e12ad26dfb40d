package service

import (
	"errors"
	"fmt"
)

var (
	ErrCourseNotFound       = errors.New("course not found")
	ErrPrerequisiteUnmet    = errors.New("prerequisite not met")
	ErrCourseFull           = errors.New("course is full")
	ErrAlreadyRegistered    = errors.New("already registered for this course")
	ErrNoOutstandingBalance = errors.New("no outstanding balance")
	ErrAlreadyPaid          = fmt.Errorf("tuition already paid: %w", ErrNoOutstandingBalance)
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidSession       = errors.New("invalid or expired session")
)

// PrerequisiteError names the missing prerequisite. It matches ErrPrerequisiteUnmet.
type PrerequisiteError struct {
	CourseID string
	PrereqID string
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("course %s requires %s", e.CourseID, e.PrereqID)
}

func (e *PrerequisiteError) Is(target error) bool {
	return target == ErrPrerequisiteUnmet
}
