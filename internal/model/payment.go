package model

import "time"

// DefaultPaymentMethod is used when the pay form omits a method.
const DefaultPaymentMethod = "Credit Card"

// Payment is an append-only ledger entry.
type Payment struct {
	ID            int64     `json:"id"`
	StudentID     string    `json:"student_id"`
	AmountPaid    float64   `json:"amount_paid"`
	PaymentMethod string    `json:"payment_method"`
	PaidAt        time.Time `json:"paid_at"`
}
