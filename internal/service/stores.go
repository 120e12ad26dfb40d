package service

import (
	"context"
	"time"

	"github.com/campusconnect/backend/internal/model"
)

// CourseStore is the catalog persistence used by the services.
type CourseStore interface {
	GetByID(ctx context.Context, id string) (*model.Course, error)
	LockByID(ctx context.Context, id string) (*model.Course, error)
	Search(ctx context.Context, f model.CourseFilter) ([]model.Course, error)
	ListEnrolled(ctx context.Context, studentID string) ([]model.Course, error)
	ListAvailable(ctx context.Context, studentID string) ([]model.Course, error)
	IncrementSeats(ctx context.Context, id string) error
	DecrementSeats(ctx context.Context, id string) error
	Upsert(ctx context.Context, c *model.Course) error
}

type StudentStore interface {
	Upsert(ctx context.Context, s *model.Student) error
}

type RegistrationStore interface {
	Exists(ctx context.Context, studentID, courseID string) (bool, error)
	Create(ctx context.Context, reg *model.Registration) error
	Delete(ctx context.Context, studentID, courseID string) (bool, error)
	ListByCourse(ctx context.Context, courseID string) ([]model.RosterEntry, error)
}

type BillingStore interface {
	TuitionDue(ctx context.Context, studentID string) (float64, error)
	TotalPaid(ctx context.Context, studentID string) (float64, error)
	LastPayment(ctx context.Context, studentID string) (*model.Payment, error)
}

type PaymentStore interface {
	LockLedger(ctx context.Context, studentID string) error
	Create(ctx context.Context, p *model.Payment) error
}

type DashboardStore interface {
	GetSummaryCounts(ctx context.Context) (model.DashboardSummary, error)
	GetCourseSeats(ctx context.Context) ([]model.CourseSeats, error)
}

// SessionStore records which session token IDs are still live.
type SessionStore interface {
	Save(ctx context.Context, tokenID, subject string, ttl time.Duration) error
	Exists(ctx context.Context, tokenID string) (bool, error)
	Delete(ctx context.Context, tokenID string) error
}

// Transactor runs fn atomically. Stores called with the ctx passed to fn
// take part in the same transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
