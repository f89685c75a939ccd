package response

import (
	"time"

	"studioops/internal/domain/entities"
)

type ClientAccountResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	ProjectID      string    `json:"project_id,omitempty"`
	BookingID      string    `json:"booking_id,omitempty"`
	Status         string    `json:"status"`
	StorageUsedGB  float64   `json:"storage_used_gb"`
	StorageLimitGB float64   `json:"storage_limit_gb"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromClientAccount(a entities.ClientAccount) ClientAccountResponse {
	return ClientAccountResponse{
		ID:             a.ID,
		UserID:         a.UserID,
		ProjectID:      a.ProjectID,
		BookingID:      a.BookingID,
		Status:         string(a.Status),
		StorageUsedGB:  a.StorageUsedGB,
		StorageLimitGB: a.StorageLimitGB,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
