package memory

import (
	"context"
	"math"

	"github.com/campusconnect/backend/internal/model"
	"github.com/campusconnect/backend/internal/repository"
	"github.com/campusconnect/backend/internal/service"
)

type BillingRepository struct {
	db *DB
}

var _ service.BillingStore = (*BillingRepository)(nil) // interface compliance check

func NewBillingRepository(db *DB) *BillingRepository {
	return &BillingRepository{db: db}
}

func cents(v float64) float64 {
	return math.Round(v*100) / 100
}

func (r *BillingRepository) TuitionDue(_ context.Context, studentID string) (float64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var due float64
	for _, reg := range r.db.registrations {
		if reg.StudentID == studentID {
			due += r.db.courses[reg.CourseID].TuitionFee
		}
	}
	return cents(due), nil
}

func (r *BillingRepository) TotalPaid(_ context.Context, studentID string) (float64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var paid float64
	for _, p := range r.db.payments {
		if p.StudentID == studentID {
			paid += p.AmountPaid
		}
	}
	return cents(paid), nil
}

func (r *BillingRepository) LastPayment(_ context.Context, studentID string) (*model.Payment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for i := len(r.db.payments) - 1; i >= 0; i-- {
		if p := r.db.payments[i]; p.StudentID == studentID {
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}
