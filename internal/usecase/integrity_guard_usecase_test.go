package usecase

import (
	"context"
	"errors"
	"testing"

	"studioops/internal/domain/entities"
	mock_interfaces "studioops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newGuard(t *testing.T) (*IntegrityGuardUseCase, *mock_interfaces.MockIProjectRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIProjectRepository(ctrl)
	return NewIntegrityGuardUseCase(repo), repo
}

func TestIntegrityGuardUseCase_Detach(t *testing.T) {
	t.Run("no projects is success", func(t *testing.T) {
		uc, repo := newGuard(t)
		repo.EXPECT().ListByBookingID(gomock.Any(), "b-1").Return(nil, nil)

		if err := uc.Detach(context.Background(), "b-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("clears projects in id order", func(t *testing.T) {
		uc, repo := newGuard(t)
		repo.EXPECT().ListByBookingID(gomock.Any(), "b-1").Return([]entities.Project{
			{ID: "p-2", BookingID: "b-1"},
			{ID: "p-1", BookingID: "b-1"},
		}, nil)
		first := repo.EXPECT().ClearBookingRef(gomock.Any(), "p-1").Return(nil)
		repo.EXPECT().ClearBookingRef(gomock.Any(), "p-2").Return(nil).After(first)

		if err := uc.Detach(context.Background(), "b-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("skips already detached projects", func(t *testing.T) {
		uc, repo := newGuard(t)
		repo.EXPECT().ListByBookingID(gomock.Any(), "b-1").Return([]entities.Project{
			{ID: "p-1", BookingID: ""},
			{ID: "p-2", BookingID: "b-1"},
		}, nil)
		repo.EXPECT().ClearBookingRef(gomock.Any(), "p-2").Return(nil)

		if err := uc.Detach(context.Background(), "b-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("transient failure retries and succeeds", func(t *testing.T) {
		uc, repo := newGuard(t)
		repo.EXPECT().ListByBookingID(gomock.Any(), "b-1").Return([]entities.Project{
			{ID: "p-1", BookingID: "b-1"},
		}, nil)
		fail := repo.EXPECT().ClearBookingRef(gomock.Any(), "p-1").Return(errors.New("throttled"))
		repo.EXPECT().ClearBookingRef(gomock.Any(), "p-1").Return(nil).After(fail)

		if err := uc.Detach(context.Background(), "b-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("exhausted retries report partial failure", func(t *testing.T) {
		uc, repo := newGuard(t)
		repo.EXPECT().ListByBookingID(gomock.Any(), "b-1").Return([]entities.Project{
			{ID: "p-1", BookingID: "b-1"},
			{ID: "p-2", BookingID: "b-1"},
		}, nil)
		repo.EXPECT().ClearBookingRef(gomock.Any(), "p-1").Return(nil)
		repo.EXPECT().ClearBookingRef(gomock.Any(), "p-2").Return(errors.New("throttled")).Times(detachAttempts)

		err := uc.Detach(context.Background(), "b-1")
		if !errors.Is(err, ErrPartialDetachFailure) {
			t.Fatalf("expected ErrPartialDetachFailure, got %v", err)
		}
	})
}

func TestIntegrityGuardUseCase_Detached(t *testing.T) {
	t.Run("true when nothing references the booking", func(t *testing.T) {
		uc, repo := newGuard(t)
		repo.EXPECT().ListByBookingID(gomock.Any(), "b-1").Return([]entities.Project{{ID: "p-1"}}, nil)

		ok, err := uc.Detached(context.Background(), "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatalf("expected detached")
		}
	})

	t.Run("false while a reference remains", func(t *testing.T) {
		uc, repo := newGuard(t)
		repo.EXPECT().ListByBookingID(gomock.Any(), "b-1").Return([]entities.Project{{ID: "p-1", BookingID: "b-1"}}, nil)

		ok, err := uc.Detached(context.Background(), "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Fatalf("expected not detached")
		}
	})
}
