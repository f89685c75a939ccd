package interfaces

import (
	"context"

	"studioops/internal/domain/entities"
)

// Ports between the consistency-engine usecases. The lifecycle manager only
// ever calls downward through these (lifecycle → guard → synchronizer/
// orchestrator → store), never the reverse.

// IPipelineSynchronizer keeps the 0:1 booking↔opportunity relationship and
// its stage in step with booking status.

type IPipelineSynchronizer interface {
	EnsureOpportunity(ctx context.Context, bookingID string) (entities.Opportunity, error)
	CreateLead(ctx context.Context, bookingID string) (entities.Opportunity, error)
	SetStageFromBookingStatus(ctx context.Context, bookingID string, status entities.BookingStatus) error
}

// IConversionOrchestrator provisions the production-side records when a
// booking is approved. OnApproval must be idempotent under retry.

type IConversionOrchestrator interface {
	OnApproval(ctx context.Context, bookingID string) error
}

// IIntegrityGuard runs cascading cleanup ahead of destructive operations.
// Detach clears booking back-references on every linked project; Detached
// reports whether any remain.

type IIntegrityGuard interface {
	Detach(ctx context.Context, bookingID string) error
	Detached(ctx context.Context, bookingID string) (bool, error)
}
