package model

import "math"

// BillingStatus is derived from registrations and payments; it is never stored.
type BillingStatus string

const (
	BillingNoBalance BillingStatus = "NO_BALANCE"
	BillingPaid      BillingStatus = "PAID"
	BillingNotPaid   BillingStatus = "NOT_PAID"
)

// BillingSummary is the billing calculator output for one student.
type BillingSummary struct {
	StudentID   string        `json:"student_id"`
	AmountDue   float64       `json:"amount_due"`
	TotalPaid   float64       `json:"total_paid"`
	Remaining   float64       `json:"remaining"`
	Status      BillingStatus `json:"status"`
	LastPayment *Payment      `json:"last_payment"`
}

// DeriveBillingStatus classifies a balance.
func DeriveBillingStatus(amountDue, totalPaid float64) BillingStatus {
	switch {
	case amountDue == 0:
		return BillingNoBalance
	case totalPaid >= amountDue:
		return BillingPaid
	default:
		return BillingNotPaid
	}
}

// RemainingBalance is max(due - paid, 0) rounded to cents.
func RemainingBalance(amountDue, totalPaid float64) float64 {
	remaining := math.Round((amountDue-totalPaid)*100) / 100
	if remaining < 0 {
		return 0
	}
	return remaining
}
