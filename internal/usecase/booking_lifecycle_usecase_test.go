package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"studioops/internal/domain/entities"
	"studioops/internal/usecase/interfaces"
	mock_interfaces "studioops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type lifecycleMocks struct {
	bookingRepo *mock_interfaces.MockIBookingRequestRepository
	pipeline    *mock_interfaces.MockIPipelineSynchronizer
	conversion  *mock_interfaces.MockIConversionOrchestrator
	guard       *mock_interfaces.MockIIntegrityGuard
	identity    *mock_interfaces.MockIIdentityProvider
	notifier    *mock_interfaces.MockINotifier
}

func newLifecycle(t *testing.T) (*BookingLifecycleUseCase, lifecycleMocks) {
	ctrl := gomock.NewController(t)
	m := lifecycleMocks{
		bookingRepo: mock_interfaces.NewMockIBookingRequestRepository(ctrl),
		pipeline:    mock_interfaces.NewMockIPipelineSynchronizer(ctrl),
		conversion:  mock_interfaces.NewMockIConversionOrchestrator(ctrl),
		guard:       mock_interfaces.NewMockIIntegrityGuard(ctrl),
		identity:    mock_interfaces.NewMockIIdentityProvider(ctrl),
		notifier:    mock_interfaces.NewMockINotifier(ctrl),
	}
	uc := NewBookingLifecycleUseCase(m.bookingRepo, m.pipeline, m.conversion, m.guard, m.identity, m.notifier)
	return uc, m
}

func pendingBooking(id string) entities.BookingRequest {
	return entities.BookingRequest{
		ID:             id,
		ContactName:    "Dana Reyes",
		ContactEmail:   "dana@example.com",
		RequestedPrice: 5000,
		Status:         entities.BookingStatusPending,
	}
}

func TestBookingLifecycleUseCase_Create(t *testing.T) {
	t.Run("missing contact", func(t *testing.T) {
		uc, _ := newLifecycle(t)
		_, err := uc.Create(context.Background(), CreateBookingInput{RequestedPrice: 100})
		if !errors.Is(err, ErrInvalidContact) {
			t.Fatalf("expected ErrInvalidContact, got %v", err)
		}
	})

	t.Run("invalid price", func(t *testing.T) {
		uc, _ := newLifecycle(t)
		_, err := uc.Create(context.Background(), CreateBookingInput{ContactName: "A", ContactEmail: "a@b.c"})
		if !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})

	t.Run("success notifies intake", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.bookingRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BookingRequest{})).DoAndReturn(
			func(_ context.Context, b entities.BookingRequest) (entities.BookingRequest, error) {
				if b.ID == "" || b.Status != entities.BookingStatusPending {
					t.Fatalf("unexpected booking: %+v", b)
				}
				if b.CreatedAt.IsZero() || b.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return b, nil
			},
		)
		m.notifier.EXPECT().Notify(interfaces.EventBookingReceived, gomock.Any())

		res, err := uc.Create(context.Background(), CreateBookingInput{
			ContactName:    " Dana Reyes ",
			ContactEmail:   "dana@example.com",
			RequestedPrice: 5000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ContactName != "Dana Reyes" {
			t.Fatalf("expected trimmed name, got %q", res.ContactName)
		}
	})
}

func TestBookingLifecycleUseCase_Approve(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newLifecycle(t)
		_, err := uc.Approve(context.Background(), " ", 5000, "")
		if !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.BookingRequest{}, nil)
		_, err := uc.Approve(context.Background(), "b-1", 5000, "")
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("success runs effects in order", func(t *testing.T) {
		uc, m := newLifecycle(t)
		b := pendingBooking("b-1")
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		m.bookingRepo.EXPECT().UpdateStatus(gomock.Any(), "b-1", entities.BookingStatusPending, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, _ entities.BookingStatus, change entities.BookingStatusChange) (entities.BookingRequest, error) {
				if change.Status != entities.BookingStatusApproved {
					t.Fatalf("expected approved, got %s", change.Status)
				}
				if change.ApprovedPrice == nil || *change.ApprovedPrice != 5000 {
					t.Fatalf("expected approved price 5000, got %+v", change.ApprovedPrice)
				}
				if change.ApprovedAt == nil || change.ApprovalToken == "" {
					t.Fatalf("expected approval timestamp and token")
				}
				b.Status = change.Status
				b.ApprovedPrice = change.ApprovedPrice
				return b, nil
			},
		)
		stageSync := m.pipeline.EXPECT().SetStageFromBookingStatus(gomock.Any(), "b-1", entities.BookingStatusApproved).Return(nil)
		provision := m.conversion.EXPECT().OnApproval(gomock.Any(), "b-1").Return(nil).After(stageSync)
		m.notifier.EXPECT().Notify(interfaces.EventBookingApproved, gomock.Any()).After(provision)

		res, err := uc.Approve(context.Background(), "b-1", 5000, "looks good")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.BookingStatusApproved {
			t.Fatalf("expected approved, got %s", res.Status)
		}
	})

	t.Run("already approved same price is idempotent", func(t *testing.T) {
		uc, m := newLifecycle(t)
		price := 5000.0
		b := pendingBooking("b-1")
		b.Status = entities.BookingStatusApproved
		b.ApprovedPrice = &price
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		m.conversion.EXPECT().OnApproval(gomock.Any(), "b-1").Return(nil)

		res, err := uc.Approve(context.Background(), "b-1", 5000, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.BookingStatusApproved {
			t.Fatalf("expected approved, got %s", res.Status)
		}
	})

	t.Run("already approved different price rejected", func(t *testing.T) {
		uc, m := newLifecycle(t)
		price := 5000.0
		b := pendingBooking("b-1")
		b.Status = entities.BookingStatusApproved
		b.ApprovedPrice = &price
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)

		_, err := uc.Approve(context.Background(), "b-1", 6000, "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("rejected booking cannot be approved", func(t *testing.T) {
		uc, m := newLifecycle(t)
		b := pendingBooking("b-1")
		b.Status = entities.BookingStatusRejected
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)

		_, err := uc.Approve(context.Background(), "b-1", 5000, "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("stale write surfaces", func(t *testing.T) {
		uc, m := newLifecycle(t)
		b := pendingBooking("b-1")
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		m.bookingRepo.EXPECT().UpdateStatus(gomock.Any(), "b-1", entities.BookingStatusPending, gomock.Any()).Return(entities.BookingRequest{}, interfaces.ErrStaleWrite)

		_, err := uc.Approve(context.Background(), "b-1", 5000, "")
		if !errors.Is(err, ErrStaleWrite) {
			t.Fatalf("expected ErrStaleWrite, got %v", err)
		}
	})
}

func TestBookingLifecycleUseCase_Counter(t *testing.T) {
	t.Run("counter equals requested", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(pendingBooking("b-1"), nil)
		_, err := uc.Counter(context.Background(), "b-1", 5000, "")
		if !errors.Is(err, ErrCounterEqualsRequested) {
			t.Fatalf("expected ErrCounterEqualsRequested, got %v", err)
		}
	})

	t.Run("success moves pipeline to negotiation", func(t *testing.T) {
		uc, m := newLifecycle(t)
		b := pendingBooking("b-1")
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		m.bookingRepo.EXPECT().UpdateStatus(gomock.Any(), "b-1", entities.BookingStatusPending, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.BookingStatus, change entities.BookingStatusChange) (entities.BookingRequest, error) {
				if change.Status != entities.BookingStatusCountered {
					t.Fatalf("expected countered, got %s", change.Status)
				}
				if change.CounterPrice == nil || *change.CounterPrice != 4200 {
					t.Fatalf("expected counter price 4200")
				}
				if change.ApprovedPrice == nil || *change.ApprovedPrice != 4200 {
					t.Fatalf("expected approved price mirror 4200")
				}
				b.Status = change.Status
				return b, nil
			},
		)
		m.pipeline.EXPECT().SetStageFromBookingStatus(gomock.Any(), "b-1", entities.BookingStatusCountered).Return(nil)
		m.notifier.EXPECT().Notify(interfaces.EventBookingCountered, gomock.Any())

		if _, err := uc.Counter(context.Background(), "b-1", 4200, "budget fit"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("countered booking cannot re-counter", func(t *testing.T) {
		uc, m := newLifecycle(t)
		b := pendingBooking("b-1")
		b.Status = entities.BookingStatusCountered
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)

		_, err := uc.Counter(context.Background(), "b-1", 4000, "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestBookingLifecycleUseCase_Reject(t *testing.T) {
	t.Run("success moves pipeline to lost", func(t *testing.T) {
		uc, m := newLifecycle(t)
		b := pendingBooking("b-1")
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		m.bookingRepo.EXPECT().UpdateStatus(gomock.Any(), "b-1", entities.BookingStatusPending, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.BookingStatus, change entities.BookingStatusChange) (entities.BookingRequest, error) {
				b.Status = change.Status
				return b, nil
			},
		)
		m.pipeline.EXPECT().SetStageFromBookingStatus(gomock.Any(), "b-1", entities.BookingStatusRejected).Return(nil)
		m.notifier.EXPECT().Notify(interfaces.EventBookingRejected, gomock.Any())

		res, err := uc.Reject(context.Background(), "b-1", "no availability")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.BookingStatusRejected {
			t.Fatalf("expected rejected, got %s", res.Status)
		}
	})

	t.Run("already rejected is a no-op success", func(t *testing.T) {
		uc, m := newLifecycle(t)
		b := pendingBooking("b-1")
		b.Status = entities.BookingStatusRejected
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)

		res, err := uc.Reject(context.Background(), "b-1", "")
		if err != nil {
			t.Fatalf("expected no-op success, got %v", err)
		}
		if res.Status != entities.BookingStatusRejected {
			t.Fatalf("unexpected status %s", res.Status)
		}
	})
}

func TestBookingLifecycleUseCase_MarkAsLead(t *testing.T) {
	t.Run("duplicate surfaces", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(pendingBooking("b-1"), nil)
		m.pipeline.EXPECT().CreateLead(gomock.Any(), "b-1").Return(entities.Opportunity{}, ErrDuplicateLead)

		_, err := uc.MarkAsLead(context.Background(), "b-1")
		if !errors.Is(err, ErrDuplicateLead) {
			t.Fatalf("expected ErrDuplicateLead, got %v", err)
		}
	})

	t.Run("success leaves booking status untouched", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(pendingBooking("b-1"), nil)
		m.pipeline.EXPECT().CreateLead(gomock.Any(), "b-1").Return(entities.Opportunity{ID: "o-1", Stage: entities.StageNewLead}, nil)

		o, err := uc.MarkAsLead(context.Background(), "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Stage != entities.StageNewLead {
			t.Fatalf("expected new_lead, got %s", o.Stage)
		}
	})
}

func TestBookingLifecycleUseCase_ArchiveUnarchive(t *testing.T) {
	t.Run("archive sets flag", func(t *testing.T) {
		uc, m := newLifecycle(t)
		b := pendingBooking("b-1")
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		m.bookingRepo.EXPECT().SetArchived(gomock.Any(), "b-1", gomock.Any(), "admin-1").DoAndReturn(
			func(_ context.Context, _ string, archivedAt *time.Time, archivedBy string) (entities.BookingRequest, error) {
				if archivedAt == nil {
					t.Fatalf("expected archived_at")
				}
				b.ArchivedAt = archivedAt
				b.ArchivedBy = archivedBy
				return b, nil
			},
		)

		res, err := uc.Archive(context.Background(), "b-1", "admin-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Archived() {
			t.Fatalf("expected archived booking")
		}
	})

	t.Run("archive twice is a no-op", func(t *testing.T) {
		uc, m := newLifecycle(t)
		now := time.Now().UTC()
		b := pendingBooking("b-1")
		b.ArchivedAt = &now
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)

		if _, err := uc.Archive(context.Background(), "b-1", "admin-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unarchive clears flag", func(t *testing.T) {
		uc, m := newLifecycle(t)
		now := time.Now().UTC()
		b := pendingBooking("b-1")
		b.ArchivedAt = &now
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		m.bookingRepo.EXPECT().SetArchived(gomock.Any(), "b-1", nil, "").Return(pendingBooking("b-1"), nil)

		res, err := uc.Unarchive(context.Background(), "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Archived() {
			t.Fatalf("expected unarchived booking")
		}
	})
}

func TestBookingLifecycleUseCase_Delete(t *testing.T) {
	t.Run("non-admin rejected", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.identity.EXPECT().ResolveRole(gomock.Any(), "user-1").Return(interfaces.RoleClient, nil)

		err := uc.Delete(context.Background(), "b-1", "user-1")
		if !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("detach failure aborts before delete flag", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.identity.EXPECT().ResolveRole(gomock.Any(), "admin-1").Return(interfaces.RoleAdmin, nil)
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(pendingBooking("b-1"), nil)
		m.guard.EXPECT().Detach(gomock.Any(), "b-1").Return(ErrPartialDetachFailure)

		err := uc.Delete(context.Background(), "b-1", "admin-1")
		if !errors.Is(err, ErrPartialDetachFailure) {
			t.Fatalf("expected ErrPartialDetachFailure, got %v", err)
		}
	})

	t.Run("success detaches then flags", func(t *testing.T) {
		uc, m := newLifecycle(t)
		b := pendingBooking("b-1")
		m.identity.EXPECT().ResolveRole(gomock.Any(), "admin-1").Return(interfaces.RoleAdmin, nil)
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil).Times(2)
		m.guard.EXPECT().Detach(gomock.Any(), "b-1").Return(nil)
		m.bookingRepo.EXPECT().SetCheckpoint(gomock.Any(), "b-1", CheckpointDetached).Return(nil)
		m.guard.EXPECT().Detached(gomock.Any(), "b-1").Return(true, nil)
		m.bookingRepo.EXPECT().MarkDeleted(gomock.Any(), "b-1").Return(b, nil)

		if err := uc.Delete(context.Background(), "b-1", "admin-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBookingLifecycleUseCase_SoftDelete(t *testing.T) {
	t.Run("refused while projects still linked", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(pendingBooking("b-1"), nil)
		m.guard.EXPECT().Detached(gomock.Any(), "b-1").Return(false, nil)

		_, err := uc.SoftDelete(context.Background(), "b-1")
		if !errors.Is(err, ErrPartialDetachFailure) {
			t.Fatalf("expected ErrPartialDetachFailure, got %v", err)
		}
	})

	t.Run("success after detach", func(t *testing.T) {
		uc, m := newLifecycle(t)
		b := pendingBooking("b-1")
		m.bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		m.guard.EXPECT().Detached(gomock.Any(), "b-1").Return(true, nil)
		b.DeletedPermanently = true
		m.bookingRepo.EXPECT().MarkDeleted(gomock.Any(), "b-1").Return(b, nil)

		res, err := uc.SoftDelete(context.Background(), "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.DeletedPermanently {
			t.Fatalf("expected delete flag set")
		}
	})
}

// Approval must leave a pipeline record even when the booking was approved
// straight from pending, without ever having been marked as a lead. Wires the
// real pipeline and conversion use cases under the lifecycle manager so the
// whole approval chain runs against mock repositories.
func TestBookingLifecycleUseCase_ApproveCreatesOpportunityWhenNoneExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	bookingRepo := mock_interfaces.NewMockIBookingRequestRepository(ctrl)
	opportunityRepo := mock_interfaces.NewMockIOpportunityRepository(ctrl)
	meetingRepo := mock_interfaces.NewMockIMeetingRepository(ctrl)
	projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
	accountRepo := mock_interfaces.NewMockIClientAccountRepository(ctrl)
	identity := mock_interfaces.NewMockIIdentityProvider(ctrl)
	notifier := mock_interfaces.NewMockINotifier(ctrl)

	pipeline := NewPipelineSyncUseCase(opportunityRepo, bookingRepo, meetingRepo, projectRepo)
	conversion := NewConversionUseCase(bookingRepo, projectRepo, accountRepo, opportunityRepo, identity)
	guard := NewIntegrityGuardUseCase(projectRepo)
	uc := NewBookingLifecycleUseCase(bookingRepo, pipeline, conversion, guard, identity, notifier)

	pending := pendingBooking("b-1")
	price := 5000.0
	approved := pending
	approved.Status = entities.BookingStatusApproved
	approved.ApprovedPrice = &price

	bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(pending, nil)
	bookingRepo.EXPECT().UpdateStatus(gomock.Any(), "b-1", entities.BookingStatusPending, gomock.Any()).Return(approved, nil)
	bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(approved, nil).Times(2)

	var createdOpp entities.Opportunity
	opportunityRepo.EXPECT().FindByBookingID(gomock.Any(), "b-1").Return(entities.Opportunity{}, nil)
	opportunityRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Opportunity{})).DoAndReturn(
		func(_ context.Context, o entities.Opportunity) (entities.Opportunity, error) {
			createdOpp = o
			return o, nil
		},
	)
	opportunityRepo.EXPECT().UpdateStage(gomock.Any(), gomock.AssignableToTypeOf(""), entities.StageWon).DoAndReturn(
		func(_ context.Context, id string, stage entities.OpportunityStage) (entities.Opportunity, error) {
			if id != createdOpp.ID {
				t.Fatalf("expected stage update for created opportunity %s, got %s", createdOpp.ID, id)
			}
			o := createdOpp
			o.Stage = stage
			return o, nil
		},
	)
	opportunityRepo.EXPECT().FindByBookingID(gomock.Any(), "b-1").DoAndReturn(
		func(context.Context, string) (entities.Opportunity, error) {
			return createdOpp, nil
		},
	)

	projectRepo.EXPECT().ListByBookingID(gomock.Any(), "b-1").Return(nil, nil)
	projectRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
		func(_ context.Context, p entities.Project) (entities.Project, error) {
			if p.OpportunityID != createdOpp.ID {
				t.Fatalf("expected project linked to created opportunity, got %+v", p)
			}
			return p, nil
		},
	)
	bookingRepo.EXPECT().SetCheckpoint(gomock.Any(), "b-1", CheckpointProjectProvisioned).Return(nil)
	accountRepo.EXPECT().FindByBookingID(gomock.Any(), "b-1").Return(entities.ClientAccount{}, nil)
	identity.EXPECT().ResolveUser(gomock.Any(), "dana@example.com", "Dana Reyes").Return("user-7", nil)
	accountRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ClientAccount{})).DoAndReturn(
		func(_ context.Context, a entities.ClientAccount) (entities.ClientAccount, error) {
			return a, nil
		},
	)
	bookingRepo.EXPECT().SetCheckpoint(gomock.Any(), "b-1", CheckpointConversionComplete).Return(nil)
	notifier.EXPECT().Notify(interfaces.EventBookingApproved, gomock.Any())

	if _, err := uc.Approve(context.Background(), "b-1", 5000, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if createdOpp.ID == "" || createdOpp.BookingID != "b-1" {
		t.Fatalf("expected an opportunity created for the booking, got %+v", createdOpp)
	}
}
