package entities

import "time"

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type PaymentType string

const (
	PaymentTypeDeposit PaymentType = "deposit"
	PaymentTypeBalance PaymentType = "balance"
	PaymentTypeCustom  PaymentType = "custom"
)

// Payment is one append-only ledger row for a booking.
//
// Storage model (DynamoDB):
//   - PK: id (the provider payment id, which makes webhook ingest idempotent)
//   - GSI1 (booking_id-index): booking_id
//
// Rows are written by the payment gateway webhook path and never mutated by
// this service; every payment figure shown to admins is derived by folding
// over the ledger at read time.

type Payment struct {
	ID        string        `json:"id"`
	BookingID string        `json:"booking_id"`
	Amount    float64       `json:"amount"`
	Type      PaymentType   `json:"payment_type"`
	Status    PaymentStatus `json:"status"`
	DueDate   *time.Time    `json:"due_date,omitempty"`
	PaidAt    *time.Time    `json:"paid_at,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
