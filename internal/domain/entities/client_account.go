package entities

import "time"

type ClientAccountStatus string

const (
	ClientAccountActive    ClientAccountStatus = "active"
	ClientAccountSuspended ClientAccountStatus = "suspended"
)

// StorageEpsilonGB is the tolerance applied to the storage soft limit so a
// final upload that lands fractionally over the quota still succeeds.
const StorageEpsilonGB = 0.05

// ClientAccount is the customer-facing portal identity and storage
// allocation tied to a converted booking.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (booking_id-index): booking_id
//
// UserID is owned by the external identity provider; this service only wires
// it to the project/booking linkage. The storage quota is a soft invariant
// checked at write time, never retroactively.

type ClientAccount struct {
	ID             string              `json:"id"`
	UserID         string              `json:"user_id"`
	ProjectID      string              `json:"project_id,omitempty"`
	BookingID      string              `json:"booking_id,omitempty"`
	Status         ClientAccountStatus `json:"status"`
	StorageUsedGB  float64             `json:"storage_used_gb"`
	StorageLimitGB float64             `json:"storage_limit_gb"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// WithinStorageLimit reports whether usedGB fits the quota plus tolerance.
func (a ClientAccount) WithinStorageLimit(usedGB float64) bool {
	return usedGB <= a.StorageLimitGB+StorageEpsilonGB
}
