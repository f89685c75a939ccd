package entities

import "time"

// MeetingOutcome is the result an admin records after a meeting happens.
// Writing an outcome is a one-way trigger: the pipeline synchronizer consumes
// it exactly once and maps it to an opportunity stage.

type MeetingOutcome string

const (
	OutcomeNoShow       MeetingOutcome = "no_show"
	OutcomeNotQualified MeetingOutcome = "not_qualified"
	OutcomeQualified    MeetingOutcome = "qualified"
	OutcomeProposalSent MeetingOutcome = "proposal_sent"
	OutcomeNegotiating  MeetingOutcome = "negotiating"
	OutcomeWon          MeetingOutcome = "won"
)

// Meeting is a scheduled session optionally linked to the booking,
// opportunity, project or client it concerns.
//
// Storage model (DynamoDB):
//   - PK: id
//
// OutcomeConsumedAt is set by the pipeline synchronizer when it processes
// the outcome; a second consume of the same outcome write is a no-op.

type Meeting struct {
	ID                string         `json:"id"`
	ScheduledAt       time.Time      `json:"scheduled_at"`
	BookingID         string         `json:"booking_id,omitempty"`
	OpportunityID     string         `json:"opportunity_id,omitempty"`
	ProjectID         string         `json:"project_id,omitempty"`
	ClientID          string         `json:"client_id,omitempty"`
	Outcome           MeetingOutcome `json:"meeting_outcome,omitempty"`
	OutcomeConsumedAt *time.Time     `json:"outcome_consumed_at,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
}
