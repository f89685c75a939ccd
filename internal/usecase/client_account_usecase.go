package usecase

import (
	"context"
	"errors"
	"strings"

	"studioops/internal/domain/entities"
	"studioops/internal/usecase/interfaces"
)

var (
	ErrClientAccountNotFound  = errors.New("client account not found")
	ErrInvalidClientAccountID = errors.New("invalid client account id")
	ErrInvalidStorageAmount   = errors.New("invalid storage amount")
	ErrStorageLimitExceeded   = errors.New("storage limit exceeded")
)

// IClientAccountUseCase exposes portal account operations owned by this
// service (the login identity itself is owned by the identity provider).

type IClientAccountUseCase interface {
	GetByID(ctx context.Context, id string) (entities.ClientAccount, error)
	RecordStorageUsed(ctx context.Context, id string, usedGB float64) (entities.ClientAccount, error)
}

type ClientAccountUseCase struct {
	accountRepo interfaces.IClientAccountRepository
}

var _ IClientAccountUseCase = (*ClientAccountUseCase)(nil)

func NewClientAccountUseCase(accountRepo interfaces.IClientAccountRepository) *ClientAccountUseCase {
	return &ClientAccountUseCase{accountRepo: accountRepo}
}

func (u *ClientAccountUseCase) GetByID(ctx context.Context, id string) (entities.ClientAccount, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ClientAccount{}, ErrInvalidClientAccountID
	}

	a, err := u.accountRepo.GetByID(ctx, id)
	if err != nil {
		return entities.ClientAccount{}, err
	}
	if a.ID == "" {
		return entities.ClientAccount{}, ErrClientAccountNotFound
	}
	return a, nil
}

// RecordStorageUsed writes the new usage figure after checking it against
// the account quota. The quota is a soft invariant enforced here at write
// time only; rows already over the limit are never rewritten retroactively.
func (u *ClientAccountUseCase) RecordStorageUsed(ctx context.Context, id string, usedGB float64) (entities.ClientAccount, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ClientAccount{}, ErrInvalidClientAccountID
	}
	if usedGB < 0 {
		return entities.ClientAccount{}, ErrInvalidStorageAmount
	}

	a, err := u.accountRepo.GetByID(ctx, id)
	if err != nil {
		return entities.ClientAccount{}, err
	}
	if a.ID == "" {
		return entities.ClientAccount{}, ErrClientAccountNotFound
	}
	if !a.WithinStorageLimit(usedGB) {
		return entities.ClientAccount{}, ErrStorageLimitExceeded
	}

	return u.accountRepo.UpdateStorageUsed(ctx, id, usedGB)
}
