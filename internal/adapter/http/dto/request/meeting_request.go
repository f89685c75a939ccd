package request

import (
	"strings"
	"time"
)

// ScheduleMeetingRequest creates a meeting; every link field is optional.
type ScheduleMeetingRequest struct {
	ScheduledAt   time.Time `json:"scheduled_at" binding:"required"`
	BookingID     string    `json:"booking_id"`
	OpportunityID string    `json:"opportunity_id"`
	ProjectID     string    `json:"project_id"`
	ClientID      string    `json:"client_id"`
}

type MeetingOutcomeRequest struct {
	Outcome string `json:"outcome" binding:"required"`
}

func (r MeetingOutcomeRequest) ResolveOutcome() string {
	return strings.ToLower(strings.TrimSpace(r.Outcome))
}
