package usecase

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"studioops/internal/domain/entities"
	"studioops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Checkpoint markers persisted on the booking row by multi-step flows. They
// record the last completed step so a retry resumes instead of rediscovering
// state; every step stays idempotent so a stale marker only costs reads.
const (
	CheckpointProjectProvisioned = "conversion:project"
	CheckpointConversionComplete = "conversion:client_account"
	CheckpointDetached           = "delete:detached"
)

const defaultStorageLimitGB = 10

// ConversionUseCase provisions the production-side records when a booking is
// approved: a Project (pre_production) and a ClientAccount wired to the
// identity the external provider resolves for the booking contact.
//
// OnApproval is idempotent under retry: existing linkage is detected and
// skipped, never duplicated.

type ConversionUseCase struct {
	bookingRepo     interfaces.IBookingRequestRepository
	projectRepo     interfaces.IProjectRepository
	accountRepo     interfaces.IClientAccountRepository
	opportunityRepo interfaces.IOpportunityRepository
	identity        interfaces.IIdentityProvider
}

var _ interfaces.IConversionOrchestrator = (*ConversionUseCase)(nil)

func NewConversionUseCase(
	bookingRepo interfaces.IBookingRequestRepository,
	projectRepo interfaces.IProjectRepository,
	accountRepo interfaces.IClientAccountRepository,
	opportunityRepo interfaces.IOpportunityRepository,
	identity interfaces.IIdentityProvider,
) *ConversionUseCase {
	return &ConversionUseCase{
		bookingRepo:     bookingRepo,
		projectRepo:     projectRepo,
		accountRepo:     accountRepo,
		opportunityRepo: opportunityRepo,
		identity:        identity,
	}
}

func (u *ConversionUseCase) OnApproval(ctx context.Context, bookingID string) error {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return ErrInvalidBookingID
	}

	b, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.ID == "" {
		return ErrBookingNotFound
	}
	if b.Checkpoint == CheckpointConversionComplete {
		return nil
	}

	project, err := u.ensureProject(ctx, b)
	if err != nil {
		return err
	}
	if b.Checkpoint != CheckpointProjectProvisioned {
		if err := u.bookingRepo.SetCheckpoint(ctx, b.ID, CheckpointProjectProvisioned); err != nil {
			return err
		}
	}

	if err := u.ensureClientAccount(ctx, b, project); err != nil {
		return err
	}
	return u.bookingRepo.SetCheckpoint(ctx, b.ID, CheckpointConversionComplete)
}

func (u *ConversionUseCase) ensureProject(ctx context.Context, b entities.BookingRequest) (entities.Project, error) {
	existing, err := u.projectRepo.ListByBookingID(ctx, b.ID)
	if err != nil {
		return entities.Project{}, err
	}
	if len(existing) > 0 {
		return existing[0], nil
	}

	opportunityID := ""
	if o, err := u.opportunityRepo.FindByBookingID(ctx, b.ID); err != nil {
		return entities.Project{}, err
	} else if o.ID != "" {
		opportunityID = o.ID
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:            uuid.NewString(),
		Name:          projectName(b),
		ProjectType:   b.EventType,
		Status:        entities.ProjectStatusPreProduction,
		BookingID:     b.ID,
		OpportunityID: opportunityID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.projectRepo.Create(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	log.Printf("[conversion][usecase] project provisioned booking_id=%s project_id=%s", b.ID, created.ID)
	return created, nil
}

func (u *ConversionUseCase) ensureClientAccount(ctx context.Context, b entities.BookingRequest, project entities.Project) error {
	existing, err := u.accountRepo.FindByBookingID(ctx, b.ID)
	if err != nil {
		return err
	}
	if existing.ID != "" {
		return nil
	}

	userID, err := u.identity.ResolveUser(ctx, b.ContactEmail, b.ContactName)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	a := entities.ClientAccount{
		ID:             uuid.NewString(),
		UserID:         userID,
		ProjectID:      project.ID,
		BookingID:      b.ID,
		Status:         entities.ClientAccountActive,
		StorageLimitGB: storageLimitGB(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.accountRepo.Create(ctx, a)
	if err != nil {
		return err
	}
	log.Printf("[conversion][usecase] client account provisioned booking_id=%s account_id=%s user_id=%s", b.ID, created.ID, userID)
	return nil
}

func projectName(b entities.BookingRequest) string {
	if b.EventType != "" {
		return b.ContactName + " - " + b.EventType
	}
	return b.ContactName
}

func storageLimitGB() float64 {
	if v := os.Getenv("CLIENT_STORAGE_LIMIT_GB"); v != "" {
		if limit, err := strconv.ParseFloat(v, 64); err == nil && limit > 0 {
			return limit
		}
	}
	return defaultStorageLimitGB
}
