package interfaces

import (
	"context"

	"studioops/internal/domain/entities"
)

// IOpportunityRepository abstracts DynamoDB persistence for Opportunity.
//
// FindByBookingID only considers non-deleted rows; together with the
// conditional create it upholds the at-most-one-opportunity-per-booking
// invariant.

type IOpportunityRepository interface {
	Create(ctx context.Context, o entities.Opportunity) (entities.Opportunity, error)
	GetByID(ctx context.Context, id string) (entities.Opportunity, error)
	FindByBookingID(ctx context.Context, bookingID string) (entities.Opportunity, error)
	UpdateStage(ctx context.Context, id string, stage entities.OpportunityStage) (entities.Opportunity, error)
}
