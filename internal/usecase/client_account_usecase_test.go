package usecase

import (
	"context"
	"errors"
	"testing"

	"studioops/internal/domain/entities"
	mock_interfaces "studioops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newClientAccount(t *testing.T) (*ClientAccountUseCase, *mock_interfaces.MockIClientAccountRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIClientAccountRepository(ctrl)
	return NewClientAccountUseCase(repo), repo
}

func TestClientAccountUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newClientAccount(t)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidClientAccountID) {
			t.Fatalf("expected ErrInvalidClientAccountID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo := newClientAccount(t)
		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.ClientAccount{}, nil)

		_, err := uc.GetByID(context.Background(), "a-1")
		if !errors.Is(err, ErrClientAccountNotFound) {
			t.Fatalf("expected ErrClientAccountNotFound, got %v", err)
		}
	})
}

func TestClientAccountUseCase_RecordStorageUsed(t *testing.T) {
	account := entities.ClientAccount{ID: "a-1", StorageLimitGB: 10, Status: entities.ClientAccountActive}

	t.Run("negative amount rejected", func(t *testing.T) {
		uc, _ := newClientAccount(t)
		_, err := uc.RecordStorageUsed(context.Background(), "a-1", -1)
		if !errors.Is(err, ErrInvalidStorageAmount) {
			t.Fatalf("expected ErrInvalidStorageAmount, got %v", err)
		}
	})

	t.Run("within limit writes usage", func(t *testing.T) {
		uc, repo := newClientAccount(t)
		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(account, nil)
		repo.EXPECT().UpdateStorageUsed(gomock.Any(), "a-1", 7.5).DoAndReturn(
			func(_ context.Context, _ string, usedGB float64) (entities.ClientAccount, error) {
				updated := account
				updated.StorageUsedGB = usedGB
				return updated, nil
			},
		)

		a, err := uc.RecordStorageUsed(context.Background(), "a-1", 7.5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.StorageUsedGB != 7.5 {
			t.Fatalf("expected 7.5 used, got %.2f", a.StorageUsedGB)
		}
	})

	t.Run("epsilon over the limit still accepted", func(t *testing.T) {
		uc, repo := newClientAccount(t)
		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(account, nil)
		repo.EXPECT().UpdateStorageUsed(gomock.Any(), "a-1", 10.04).Return(account, nil)

		if _, err := uc.RecordStorageUsed(context.Background(), "a-1", 10.04); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("over the limit rejected", func(t *testing.T) {
		uc, repo := newClientAccount(t)
		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(account, nil)

		_, err := uc.RecordStorageUsed(context.Background(), "a-1", 10.2)
		if !errors.Is(err, ErrStorageLimitExceeded) {
			t.Fatalf("expected ErrStorageLimitExceeded, got %v", err)
		}
	})
}
