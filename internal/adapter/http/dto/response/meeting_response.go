package response

import (
	"time"

	"studioops/internal/domain/entities"
)

type MeetingResponse struct {
	ID                string     `json:"id"`
	ScheduledAt       time.Time  `json:"scheduled_at"`
	BookingID         string     `json:"booking_id,omitempty"`
	OpportunityID     string     `json:"opportunity_id,omitempty"`
	ProjectID         string     `json:"project_id,omitempty"`
	ClientID          string     `json:"client_id,omitempty"`
	Outcome           string     `json:"meeting_outcome,omitempty"`
	OutcomeConsumedAt *time.Time `json:"outcome_consumed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func FromMeeting(m entities.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:                m.ID,
		ScheduledAt:       m.ScheduledAt,
		BookingID:         m.BookingID,
		OpportunityID:     m.OpportunityID,
		ProjectID:         m.ProjectID,
		ClientID:          m.ClientID,
		Outcome:           string(m.Outcome),
		OutcomeConsumedAt: m.OutcomeConsumedAt,
		CreatedAt:         m.CreatedAt,
	}
}
