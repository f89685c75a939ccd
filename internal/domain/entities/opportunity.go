package entities

import "time"

// OpportunityStage tracks where a sales opportunity sits in the pipeline.
//
// Stage changes are deliberately not validated against a directed graph:
// admins drag cards freely on the pipeline board, so any stage may be set
// from any stage.

type OpportunityStage string

const (
	StageNewLead     OpportunityStage = "new_lead"
	StageQualified   OpportunityStage = "qualified"
	StageProposal    OpportunityStage = "proposal"
	StageNegotiation OpportunityStage = "negotiation"
	StageWon         OpportunityStage = "won"
	StageLost        OpportunityStage = "lost"
)

// Opportunity is the sales-pipeline record for a booking.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (booking_id-index): booking_id
//
// BookingID is a weak back-reference used for lookup only; at most one
// non-deleted Opportunity may carry a given booking_id. Contact fields are a
// snapshot taken from the booking at creation time and are not kept in sync
// afterwards.

type Opportunity struct {
	ID           string           `json:"id"`
	BookingID    string           `json:"booking_id,omitempty"`
	ContactName  string           `json:"contact_name"`
	ContactEmail string           `json:"contact_email"`
	ContactPhone string           `json:"contact_phone,omitempty"`
	Stage        OpportunityStage `json:"stage"`
	Deleted      bool             `json:"deleted"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
