package request

import (
	"strings"
	"time"
)

// CreateBookingRequest is the public intake payload.
type CreateBookingRequest struct {
	ContactName    string     `json:"contact_name" binding:"required"`
	ContactEmail   string     `json:"contact_email" binding:"required"`
	ContactPhone   string     `json:"contact_phone"`
	EventType      string     `json:"event_type"`
	EventDate      *time.Time `json:"event_date"`
	RequestedPrice float64    `json:"requested_price" binding:"required"`
	DepositAmount  float64    `json:"deposit_amount"`
	Notes          string     `json:"notes"`
}

type ApproveBookingRequest struct {
	ApprovedPrice float64 `json:"approved_price" binding:"required"`
	Notes         string  `json:"notes"`
}

type CounterBookingRequest struct {
	CounterPrice float64 `json:"counter_price" binding:"required"`
	Notes        string  `json:"notes"`
}

type RejectBookingRequest struct {
	Notes string `json:"notes"`
}

type ArchiveBookingRequest struct {
	ArchivedBy string `json:"archived_by"`
}

func (r ArchiveBookingRequest) ResolveArchivedBy() string {
	return strings.TrimSpace(r.ArchivedBy)
}
