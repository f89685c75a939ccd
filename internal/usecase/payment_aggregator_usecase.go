package usecase

import (
	"context"
	"strings"
	"time"

	"studioops/internal/domain/entities"
	"studioops/internal/usecase/interfaces"
)

// Aggregate payment statuses derived from the ledger. Priority order: any
// paid row wins, then any pending row, then failed; an empty ledger is
// "none".
const (
	AggregateStatusPaid    = "paid"
	AggregateStatusPending = "pending"
	AggregateStatusFailed  = "failed"
	AggregateStatusNone    = "none"
)

// PaymentSummary is the read-side view of a booking's ledger.
//
// Outstanding may be negative when a booking is overpaid; it is surfaced
// as-is so admins can see the overpayment.
type PaymentSummary struct {
	BookingID       string
	Payments        []entities.Payment
	TotalPaid       float64
	AggregateStatus string
	Outstanding     float64
	OverdueIDs      []string
}

// IPaymentAggregatorUseCase exposes read-only payment aggregation. It never
// mutates ledger rows.

type IPaymentAggregatorUseCase interface {
	Summary(ctx context.Context, bookingID string) (PaymentSummary, error)
	TotalPaid(ctx context.Context, bookingID string) (float64, error)
	AggregateStatus(ctx context.Context, bookingID string) (string, error)
}

type PaymentAggregatorUseCase struct {
	paymentRepo interfaces.IPaymentRepository
	bookingRepo interfaces.IBookingRequestRepository
}

var _ IPaymentAggregatorUseCase = (*PaymentAggregatorUseCase)(nil)

func NewPaymentAggregatorUseCase(paymentRepo interfaces.IPaymentRepository, bookingRepo interfaces.IBookingRequestRepository) *PaymentAggregatorUseCase {
	return &PaymentAggregatorUseCase{paymentRepo: paymentRepo, bookingRepo: bookingRepo}
}

func (u *PaymentAggregatorUseCase) Summary(ctx context.Context, bookingID string) (PaymentSummary, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return PaymentSummary{}, ErrInvalidBookingID
	}

	b, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return PaymentSummary{}, err
	}
	if b.ID == "" {
		return PaymentSummary{}, ErrBookingNotFound
	}

	payments, err := u.paymentRepo.ListByBookingID(ctx, bookingID)
	if err != nil {
		return PaymentSummary{}, err
	}

	now := time.Now().UTC()
	totalPaid := TotalPaidOf(payments)
	summary := PaymentSummary{
		BookingID:       bookingID,
		Payments:        payments,
		TotalPaid:       totalPaid,
		AggregateStatus: AggregateStatusOf(payments),
		Outstanding:     b.EffectivePrice() - totalPaid,
	}
	for _, p := range payments {
		if IsOverdue(p, now) {
			summary.OverdueIDs = append(summary.OverdueIDs, p.ID)
		}
	}
	return summary, nil
}

func (u *PaymentAggregatorUseCase) TotalPaid(ctx context.Context, bookingID string) (float64, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return 0, ErrInvalidBookingID
	}
	payments, err := u.paymentRepo.ListByBookingID(ctx, bookingID)
	if err != nil {
		return 0, err
	}
	return TotalPaidOf(payments), nil
}

func (u *PaymentAggregatorUseCase) AggregateStatus(ctx context.Context, bookingID string) (string, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return "", ErrInvalidBookingID
	}
	payments, err := u.paymentRepo.ListByBookingID(ctx, bookingID)
	if err != nil {
		return "", err
	}
	return AggregateStatusOf(payments), nil
}

// TotalPaidOf sums the amounts of paid ledger rows.
func TotalPaidOf(payments []entities.Payment) float64 {
	total := 0.0
	for _, p := range payments {
		if p.Status == entities.PaymentStatusPaid {
			total += p.Amount
		}
	}
	return total
}

// AggregateStatusOf folds a ledger into one status by priority:
// paid > pending > failed, "none" when the ledger is empty.
func AggregateStatusOf(payments []entities.Payment) string {
	if len(payments) == 0 {
		return AggregateStatusNone
	}
	hasPending := false
	for _, p := range payments {
		switch p.Status {
		case entities.PaymentStatusPaid:
			return AggregateStatusPaid
		case entities.PaymentStatusPending:
			hasPending = true
		}
	}
	if hasPending {
		return AggregateStatusPending
	}
	return AggregateStatusFailed
}

// IsOverdue reports whether a pending payment's due date has passed.
func IsOverdue(p entities.Payment, now time.Time) bool {
	return p.Status == entities.PaymentStatusPending && p.DueDate != nil && p.DueDate.Before(now)
}
