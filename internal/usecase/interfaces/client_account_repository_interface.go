package interfaces

import (
	"context"

	"studioops/internal/domain/entities"
)

// IClientAccountRepository abstracts DynamoDB persistence for ClientAccount.

type IClientAccountRepository interface {
	Create(ctx context.Context, a entities.ClientAccount) (entities.ClientAccount, error)
	GetByID(ctx context.Context, id string) (entities.ClientAccount, error)
	FindByBookingID(ctx context.Context, bookingID string) (entities.ClientAccount, error)
	UpdateStorageUsed(ctx context.Context, id string, usedGB float64) (entities.ClientAccount, error)
}
