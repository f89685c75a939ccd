package interfaces

import (
	"context"

	"studioops/internal/domain/entities"
)

// IPaymentRepository abstracts the append-only payments ledger.
//
// Create is conditional on the payment id not existing; a duplicate webhook
// delivery returns the zero value with a nil error, matching the read
// contract of the other repositories, and the caller treats that as an
// already-ingested event. There are deliberately no update or delete
// operations.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.Payment, error)
}
