package response

import (
	"time"

	"studioops/internal/domain/entities"
)

type OpportunityResponse struct {
	ID           string    `json:"id"`
	BookingID    string    `json:"booking_id,omitempty"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	Stage        string    `json:"stage"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromOpportunity(o entities.Opportunity) OpportunityResponse {
	return OpportunityResponse{
		ID:           o.ID,
		BookingID:    o.BookingID,
		ContactName:  o.ContactName,
		ContactEmail: o.ContactEmail,
		ContactPhone: o.ContactPhone,
		Stage:        string(o.Stage),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

// MeetingOutcomeResponse reports what applying a meeting outcome did.
type MeetingOutcomeResponse struct {
	Opportunity *OpportunityResponse `json:"opportunity,omitempty"`
	Skipped     bool                 `json:"skipped"`
	Reason      string               `json:"reason,omitempty"`
}
