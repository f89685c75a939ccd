package interfaces

import (
	"context"

	"studioops/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// ClearBookingRef must be idempotent: clearing an already-empty booking_id is
// a successful no-op so the integrity guard can be re-run after a partial
// failure.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.Project, error)
	ClearBookingRef(ctx context.Context, projectID string) error
}
