package usecase

import (
	"context"
	"errors"
	"testing"

	"studioops/internal/domain/entities"
	mock_interfaces "studioops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type conversionMocks struct {
	bookingRepo     *mock_interfaces.MockIBookingRequestRepository
	projectRepo     *mock_interfaces.MockIProjectRepository
	accountRepo     *mock_interfaces.MockIClientAccountRepository
	opportunityRepo *mock_interfaces.MockIOpportunityRepository
	identity        *mock_interfaces.MockIIdentityProvider
}

func newConversion(t *testing.T) (*ConversionUseCase, conversionMocks) {
	ctrl := gomock.NewController(t)
	m := conversionMocks{
		bookingRepo:     mock_interfaces.NewMockIBookingRequestRepository(ctrl),
		projectRepo:     mock_interfaces.NewMockIProjectRepository(ctrl),
		accountRepo:     mock_interfaces.NewMockIClientAccountRepository(ctrl),
		opportunityRepo: mock_interfaces.NewMockIOpportunityRepository(ctrl),
		identity:        mock_interfaces.NewMockIIdentityProvider(ctrl),
	}
	uc := NewConversionUseCase(m.bookingRepo, m.projectRepo, m.accountRepo, m.opportunityRepo, m.identity)
	return uc, m
}

func approvedBooking(id string) entities.BookingRequest {
	return entities.BookingRequest{
		ID:           id,
		ContactName:  "Dana Reyes",
		ContactEmail: "dana@example.com",
		EventType:    "Wedding",
		Status:       entities.BookingStatusApproved,
	}
}

func TestConversionUseCase_OnApproval(t *testing.T) {
	t.Run("booking not found", func(t *testing.T) {
		uc, m := newConversion(t)
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.BookingRequest{}, nil)

		err := uc.OnApproval(context.Background(), "b-1")
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("completed checkpoint short-circuits", func(t *testing.T) {
		uc, m := newConversion(t)
		b := approvedBooking("b-1")
		b.Checkpoint = CheckpointConversionComplete
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)

		if err := uc.OnApproval(context.Background(), "b-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("provisions project and account once", func(t *testing.T) {
		uc, m := newConversion(t)
		b := approvedBooking("b-1")
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		m.projectRepo.EXPECT().ListByBookingID(gomock.Any(), "b-1").Return(nil, nil)
		m.opportunityRepo.EXPECT().FindByBookingID(gomock.Any(), "b-1").Return(entities.Opportunity{ID: "o-1"}, nil)
		m.projectRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Name != "Dana Reyes - Wedding" {
					t.Fatalf("unexpected project name %q", p.Name)
				}
				if p.Status != entities.ProjectStatusPreProduction {
					t.Fatalf("expected pre_production, got %s", p.Status)
				}
				if p.BookingID != "b-1" || p.OpportunityID != "o-1" {
					t.Fatalf("expected linkage, got %+v", p)
				}
				return p, nil
			},
		)
		m.bookingRepo.EXPECT().SetCheckpoint(gomock.Any(), "b-1", CheckpointProjectProvisioned).Return(nil)
		m.accountRepo.EXPECT().FindByBookingID(gomock.Any(), "b-1").Return(entities.ClientAccount{}, nil)
		m.identity.EXPECT().ResolveUser(gomock.Any(), "dana@example.com", "Dana Reyes").Return("user-7", nil)
		m.accountRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ClientAccount{})).DoAndReturn(
			func(_ context.Context, a entities.ClientAccount) (entities.ClientAccount, error) {
				if a.UserID != "user-7" || a.BookingID != "b-1" {
					t.Fatalf("unexpected account %+v", a)
				}
				if a.Status != entities.ClientAccountActive || a.StorageLimitGB != defaultStorageLimitGB {
					t.Fatalf("unexpected account defaults %+v", a)
				}
				return a, nil
			},
		)
		m.bookingRepo.EXPECT().SetCheckpoint(gomock.Any(), "b-1", CheckpointConversionComplete).Return(nil)

		if err := uc.OnApproval(context.Background(), "b-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("retry after project checkpoint reuses project", func(t *testing.T) {
		uc, m := newConversion(t)
		b := approvedBooking("b-1")
		b.Checkpoint = CheckpointProjectProvisioned
		existing := entities.Project{ID: "p-1", BookingID: "b-1"}
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		m.projectRepo.EXPECT().ListByBookingID(gomock.Any(), "b-1").Return([]entities.Project{existing}, nil)
		m.accountRepo.EXPECT().FindByBookingID(gomock.Any(), "b-1").Return(entities.ClientAccount{}, nil)
		m.identity.EXPECT().ResolveUser(gomock.Any(), "dana@example.com", "Dana Reyes").Return("user-7", nil)
		m.accountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.ClientAccount) (entities.ClientAccount, error) {
				if a.ProjectID != "p-1" {
					t.Fatalf("expected account bound to existing project, got %+v", a)
				}
				return a, nil
			},
		)
		m.bookingRepo.EXPECT().SetCheckpoint(gomock.Any(), "b-1", CheckpointConversionComplete).Return(nil)

		if err := uc.OnApproval(context.Background(), "b-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("existing account is not duplicated", func(t *testing.T) {
		uc, m := newConversion(t)
		b := approvedBooking("b-1")
		b.Checkpoint = CheckpointProjectProvisioned
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		m.projectRepo.EXPECT().ListByBookingID(gomock.Any(), "b-1").Return([]entities.Project{{ID: "p-1", BookingID: "b-1"}}, nil)
		m.accountRepo.EXPECT().FindByBookingID(gomock.Any(), "b-1").Return(entities.ClientAccount{ID: "a-1"}, nil)
		m.bookingRepo.EXPECT().SetCheckpoint(gomock.Any(), "b-1", CheckpointConversionComplete).Return(nil)

		if err := uc.OnApproval(context.Background(), "b-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("identity failure propagates before account write", func(t *testing.T) {
		uc, m := newConversion(t)
		b := approvedBooking("b-1")
		b.Checkpoint = CheckpointProjectProvisioned
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		m.projectRepo.EXPECT().ListByBookingID(gomock.Any(), "b-1").Return([]entities.Project{{ID: "p-1", BookingID: "b-1"}}, nil)
		m.accountRepo.EXPECT().FindByBookingID(gomock.Any(), "b-1").Return(entities.ClientAccount{}, nil)
		resolveErr := errors.New("identity provider unavailable")
		m.identity.EXPECT().ResolveUser(gomock.Any(), "dana@example.com", "Dana Reyes").Return("", resolveErr)

		err := uc.OnApproval(context.Background(), "b-1")
		if !errors.Is(err, resolveErr) {
			t.Fatalf("expected identity error, got %v", err)
		}
	})
}

func TestProjectName(t *testing.T) {
	b := approvedBooking("b-1")
	if got := projectName(b); got != "Dana Reyes - Wedding" {
		t.Fatalf("unexpected name %q", got)
	}
	b.EventType = ""
	if got := projectName(b); got != "Dana Reyes" {
		t.Fatalf("unexpected name %q", got)
	}
}
