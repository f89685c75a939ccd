package entities

import "time"

type ProjectStatus string

const (
	ProjectStatusPreProduction  ProjectStatus = "pre_production"
	ProjectStatusInProduction   ProjectStatus = "in_production"
	ProjectStatusPostProduction ProjectStatus = "post_production"
	ProjectStatusCompleted      ProjectStatus = "completed"
	ProjectStatusOnHold         ProjectStatus = "on_hold"
)

// Project is the internal production-tracking record created when a booking
// is approved.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (booking_id-index): booking_id
//
// BookingID and OpportunityID are weak back-references. The integrity guard
// clears BookingID on every linked project before the referenced booking may
// be soft-deleted; a project therefore outlives its booking.

type Project struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	ProjectType   string        `json:"project_type,omitempty"`
	Status        ProjectStatus `json:"status"`
	BookingID     string        `json:"booking_id,omitempty"`
	OpportunityID string        `json:"opportunity_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
