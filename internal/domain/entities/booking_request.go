package entities

import "time"

// BookingStatus represents the sales lifecycle of a booking request.
//
// Domain notes:
//   - "lead" is assigned when a request is created straight from a pipeline
//     lead capture; marking an existing request as lead only creates the
//     Opportunity and leaves the status untouched.
//   - Archive and permanent deletion are orthogonal flags on the row, not
//     statuses: archived requests keep their status and reappear unchanged
//     when unarchived.

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusLead      BookingStatus = "lead"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusCountered BookingStatus = "countered"
	BookingStatusRejected  BookingStatus = "rejected"
)

// BookingRequest is the customer intake record for a production engagement.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Visibility rules:
//   - DeletedPermanently=true rows are excluded from every listing and from
//     GetByID at the repository layer; the row stays in storage for audit.
//   - ArchivedAt!=nil rows are excluded from the active listing but shown in
//     the archive listing.
//
// Checkpoint records the last completed step of a multi-row flow
// (approval provisioning, detach-then-delete) so a retry resumes instead of
// redoing earlier steps. Every step is idempotent, so a missing checkpoint
// only costs extra reads.

type BookingRequest struct {
	ID             string  `json:"id"`
	ContactName    string  `json:"contact_name"`
	ContactEmail   string  `json:"contact_email"`
	ContactPhone   string  `json:"contact_phone,omitempty"`
	EventType      string  `json:"event_type,omitempty"`
	RequestedPrice float64 `json:"requested_price"`
	DepositAmount  float64 `json:"deposit_amount,omitempty"`

	Status        BookingStatus `json:"status"`
	CounterPrice  *float64      `json:"counter_price,omitempty"`
	ApprovedPrice *float64      `json:"approved_price,omitempty"`
	Notes         string        `json:"notes,omitempty"`

	// ApprovalToken is a single-use portal link-login credential minted at
	// approval time. Consumption is owned by the identity provider.
	ApprovalToken string     `json:"approval_token,omitempty"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`

	ArchivedAt         *time.Time `json:"archived_at,omitempty"`
	ArchivedBy         string     `json:"archived_by,omitempty"`
	DeletedPermanently bool       `json:"deleted_permanently"`
	Checkpoint         string     `json:"checkpoint,omitempty"`

	EventDate *time.Time `json:"event_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Archived reports the archive flag independently of status.
func (b BookingRequest) Archived() bool {
	return b.ArchivedAt != nil
}

// EffectivePrice is the amount payments are reconciled against: the approved
// price once one exists, the requested price before that.
func (b BookingRequest) EffectivePrice() float64 {
	if b.ApprovedPrice != nil {
		return *b.ApprovedPrice
	}
	return b.RequestedPrice
}

// BookingStatusChange carries the row mutation produced by a lifecycle
// transition. Nil pointer fields are left untouched by the repository.
type BookingStatusChange struct {
	Status        BookingStatus
	ApprovedPrice *float64
	CounterPrice  *float64
	ApprovedAt    *time.Time
	ApprovalToken string
	Notes         string
}
