package memory

import (
	"context"
	"errors"

	"github.com/campusconnect/backend/internal/model"
	"github.com/campusconnect/backend/internal/service"
)

var errNonPositivePayment = errors.New("payment amount must be positive")

type PaymentRepository struct {
	db *DB
}

var _ service.PaymentStore = (*PaymentRepository)(nil) // interface compliance check

func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// LockLedger is a no-op; transactions are already serialized.
func (r *PaymentRepository) LockLedger(context.Context, string) error {
	return nil
}

func (r *PaymentRepository) Create(_ context.Context, p *model.Payment) error {
	if p.AmountPaid <= 0 {
		return errNonPositivePayment
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.paymentPK++
	p.ID = r.db.paymentPK
	p.PaidAt = r.db.now()
	r.db.payments = append(r.db.payments, *p)
	return nil
}

// Payments returns a copy of the ledger for one student, oldest first.
func (r *PaymentRepository) Payments(studentID string) []model.Payment {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var out []model.Payment
	for _, p := range r.db.payments {
		if p.StudentID == studentID {
			out = append(out, p)
		}
	}
	return out
}
