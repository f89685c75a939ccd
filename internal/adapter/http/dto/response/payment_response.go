package response

import (
	"time"

	"studioops/internal/domain/entities"
	"studioops/internal/usecase"
)

type PaymentResponse struct {
	ID        string     `json:"id"`
	BookingID string     `json:"booking_id"`
	Amount    float64    `json:"amount"`
	Type      string     `json:"payment_type"`
	Status    string     `json:"status"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		BookingID: p.BookingID,
		Amount:    p.Amount,
		Type:      string(p.Type),
		Status:    string(p.Status),
		DueDate:   p.DueDate,
		PaidAt:    p.PaidAt,
		CreatedAt: p.CreatedAt,
	}
}

type PaymentSummaryResponse struct {
	BookingID       string            `json:"booking_id"`
	Payments        []PaymentResponse `json:"payments"`
	TotalPaid       float64           `json:"total_paid"`
	AggregateStatus string            `json:"aggregate_status"`
	Outstanding     float64           `json:"outstanding"`
	OverdueIDs      []string          `json:"overdue_ids,omitempty"`
}

func FromPaymentSummary(s usecase.PaymentSummary) PaymentSummaryResponse {
	payments := make([]PaymentResponse, 0, len(s.Payments))
	for _, p := range s.Payments {
		payments = append(payments, FromPayment(p))
	}
	return PaymentSummaryResponse{
		BookingID:       s.BookingID,
		Payments:        payments,
		TotalPaid:       s.TotalPaid,
		AggregateStatus: s.AggregateStatus,
		Outstanding:     s.Outstanding,
		OverdueIDs:      s.OverdueIDs,
	}
}
