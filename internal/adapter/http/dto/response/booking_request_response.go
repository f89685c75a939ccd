package response

import (
	"time"

	"studioops/internal/domain/entities"
)

type BookingRequestResponse struct {
	ID             string     `json:"id"`
	ContactName    string     `json:"contact_name"`
	ContactEmail   string     `json:"contact_email"`
	ContactPhone   string     `json:"contact_phone,omitempty"`
	EventType      string     `json:"event_type,omitempty"`
	EventDate      *time.Time `json:"event_date,omitempty"`
	RequestedPrice float64    `json:"requested_price"`
	DepositAmount  float64    `json:"deposit_amount,omitempty"`
	Status         string     `json:"status"`
	CounterPrice   *float64   `json:"counter_price,omitempty"`
	ApprovedPrice  *float64   `json:"approved_price,omitempty"`
	EffectivePrice float64    `json:"effective_price"`
	Notes          string     `json:"notes,omitempty"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	Archived       bool       `json:"archived"`
	ArchivedAt     *time.Time `json:"archived_at,omitempty"`
	ArchivedBy     string     `json:"archived_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func FromBookingRequest(b entities.BookingRequest) BookingRequestResponse {
	return BookingRequestResponse{
		ID:             b.ID,
		ContactName:    b.ContactName,
		ContactEmail:   b.ContactEmail,
		ContactPhone:   b.ContactPhone,
		EventType:      b.EventType,
		EventDate:      b.EventDate,
		RequestedPrice: b.RequestedPrice,
		DepositAmount:  b.DepositAmount,
		Status:         string(b.Status),
		CounterPrice:   b.CounterPrice,
		ApprovedPrice:  b.ApprovedPrice,
		EffectivePrice: b.EffectivePrice(),
		Notes:          b.Notes,
		ApprovedAt:     b.ApprovedAt,
		Archived:       b.Archived(),
		ArchivedAt:     b.ArchivedAt,
		ArchivedBy:     b.ArchivedBy,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func FromBookingRequests(bookings []entities.BookingRequest) []BookingRequestResponse {
	out := make([]BookingRequestResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBookingRequest(b))
	}
	return out
}
