package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"studioops/internal/domain/entities"
	"studioops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound        = errors.New("booking request not found")
	ErrInvalidBookingID       = errors.New("invalid booking id")
	ErrInvalidPrice           = errors.New("invalid price")
	ErrInvalidContact         = errors.New("invalid contact details")
	ErrCounterEqualsRequested = errors.New("counter price equals requested price")
	ErrInvalidTransition      = errors.New("booking is not in a state that permits this action")
	ErrNotAuthorized          = errors.New("user is not authorized for this action")

	// ErrStaleWrite is re-exported so handlers map every lifecycle failure
	// through this package.
	ErrStaleWrite = interfaces.ErrStaleWrite
)

// CreateBookingInput is the public intake payload.
type CreateBookingInput struct {
	ContactName    string
	ContactEmail   string
	ContactPhone   string
	EventType      string
	EventDate      *time.Time
	RequestedPrice float64
	DepositAmount  float64
	Notes          string
}

// IBookingLifecycleUseCase owns every BookingRequest mutation. All status
// changes run through the transition table; the returned side effects are
// executed in fixed order (pipeline stage sync, conversion provisioning,
// notification) after the booking row itself is written.

type IBookingLifecycleUseCase interface {
	Create(ctx context.Context, input CreateBookingInput) (entities.BookingRequest, error)
	GetByID(ctx context.Context, id string) (entities.BookingRequest, error)
	ListActive(ctx context.Context) ([]entities.BookingRequest, error)
	ListArchived(ctx context.Context) ([]entities.BookingRequest, error)
	Approve(ctx context.Context, id string, approvedPrice float64, notes string) (entities.BookingRequest, error)
	Counter(ctx context.Context, id string, counterPrice float64, notes string) (entities.BookingRequest, error)
	Reject(ctx context.Context, id, notes string) (entities.BookingRequest, error)
	MarkAsLead(ctx context.Context, id string) (entities.Opportunity, error)
	Archive(ctx context.Context, id, byUser string) (entities.BookingRequest, error)
	Unarchive(ctx context.Context, id string) (entities.BookingRequest, error)
	Delete(ctx context.Context, id, requestedBy string) error
	SoftDelete(ctx context.Context, id string) (entities.BookingRequest, error)
}

type BookingLifecycleUseCase struct {
	bookingRepo interfaces.IBookingRequestRepository
	pipeline    interfaces.IPipelineSynchronizer
	conversion  interfaces.IConversionOrchestrator
	guard       interfaces.IIntegrityGuard
	identity    interfaces.IIdentityProvider
	notifier    interfaces.INotifier
}

var _ IBookingLifecycleUseCase = (*BookingLifecycleUseCase)(nil)

func NewBookingLifecycleUseCase(
	bookingRepo interfaces.IBookingRequestRepository,
	pipeline interfaces.IPipelineSynchronizer,
	conversion interfaces.IConversionOrchestrator,
	guard interfaces.IIntegrityGuard,
	identity interfaces.IIdentityProvider,
	notifier interfaces.INotifier,
) *BookingLifecycleUseCase {
	return &BookingLifecycleUseCase{
		bookingRepo: bookingRepo,
		pipeline:    pipeline,
		conversion:  conversion,
		guard:       guard,
		identity:    identity,
		notifier:    notifier,
	}
}

func (u *BookingLifecycleUseCase) Create(ctx context.Context, input CreateBookingInput) (entities.BookingRequest, error) {
	input.ContactName = strings.TrimSpace(input.ContactName)
	input.ContactEmail = strings.TrimSpace(input.ContactEmail)
	if input.ContactName == "" || input.ContactEmail == "" {
		return entities.BookingRequest{}, ErrInvalidContact
	}
	if input.RequestedPrice <= 0 {
		return entities.BookingRequest{}, ErrInvalidPrice
	}

	now := time.Now().UTC()
	b := entities.BookingRequest{
		ID:             uuid.NewString(),
		ContactName:    input.ContactName,
		ContactEmail:   input.ContactEmail,
		ContactPhone:   strings.TrimSpace(input.ContactPhone),
		EventType:      strings.TrimSpace(input.EventType),
		EventDate:      input.EventDate,
		RequestedPrice: input.RequestedPrice,
		DepositAmount:  input.DepositAmount,
		Status:         entities.BookingStatusPending,
		Notes:          input.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.bookingRepo.Create(ctx, b)
	if err != nil {
		return entities.BookingRequest{}, err
	}
	u.notifier.Notify(interfaces.EventBookingReceived, created)
	return created, nil
}

func (u *BookingLifecycleUseCase) GetByID(ctx context.Context, id string) (entities.BookingRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BookingRequest{}, ErrInvalidBookingID
	}

	b, err := u.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return entities.BookingRequest{}, err
	}
	if b.ID == "" {
		return entities.BookingRequest{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingLifecycleUseCase) ListActive(ctx context.Context) ([]entities.BookingRequest, error) {
	return u.bookingRepo.ListActive(ctx)
}

func (u *BookingLifecycleUseCase) ListArchived(ctx context.Context) ([]entities.BookingRequest, error) {
	return u.bookingRepo.ListArchived(ctx)
}

// Approve moves the booking to approved, mints the portal approval token and
// runs the approval side effects (stage=won, project/account provisioning,
// notification).
//
// Re-approving an already-approved booking with the same price is an
// idempotent success: the provisioning step is re-run and converges without
// creating duplicates. A different price is an invalid transition.
func (u *BookingLifecycleUseCase) Approve(ctx context.Context, id string, approvedPrice float64, notes string) (entities.BookingRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BookingRequest{}, ErrInvalidBookingID
	}
	if approvedPrice <= 0 {
		return entities.BookingRequest{}, ErrInvalidPrice
	}

	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.BookingRequest{}, err
	}

	if b.Status == entities.BookingStatusApproved {
		if b.ApprovedPrice != nil && *b.ApprovedPrice == approvedPrice {
			log.Printf("[booking][usecase] approve retry converges booking_id=%s", b.ID)
			if err := u.conversion.OnApproval(ctx, b.ID); err != nil {
				return entities.BookingRequest{}, err
			}
			return b, nil
		}
		return entities.BookingRequest{}, ErrInvalidTransition
	}

	res, ok := entities.Transition(b.Status, entities.EventApprove)
	if !ok {
		return entities.BookingRequest{}, ErrInvalidTransition
	}

	now := time.Now().UTC()
	change := entities.BookingStatusChange{
		Status:        res.Next,
		ApprovedPrice: &approvedPrice,
		ApprovedAt:    &now,
		ApprovalToken: uuid.NewString(),
		Notes:         notes,
	}
	updated, err := u.bookingRepo.UpdateStatus(ctx, b.ID, b.Status, change)
	if err != nil {
		return entities.BookingRequest{}, err
	}
	log.Printf("[booking][usecase] approved booking_id=%s approved_price=%.2f", updated.ID, approvedPrice)

	if err := u.applyEffects(ctx, updated, res.Effects); err != nil {
		return entities.BookingRequest{}, err
	}
	return updated, nil
}

// Counter proposes a different price back to the customer. The counter price
// must differ from the requested one; the pipeline moves to negotiation.
func (u *BookingLifecycleUseCase) Counter(ctx context.Context, id string, counterPrice float64, notes string) (entities.BookingRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BookingRequest{}, ErrInvalidBookingID
	}
	if counterPrice <= 0 {
		return entities.BookingRequest{}, ErrInvalidPrice
	}

	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.BookingRequest{}, err
	}
	if counterPrice == b.RequestedPrice {
		return entities.BookingRequest{}, ErrCounterEqualsRequested
	}

	res, ok := entities.Transition(b.Status, entities.EventCounter)
	if !ok {
		return entities.BookingRequest{}, ErrInvalidTransition
	}

	change := entities.BookingStatusChange{
		Status:        res.Next,
		CounterPrice:  &counterPrice,
		ApprovedPrice: &counterPrice,
		Notes:         notes,
	}
	updated, err := u.bookingRepo.UpdateStatus(ctx, b.ID, b.Status, change)
	if err != nil {
		return entities.BookingRequest{}, err
	}

	if err := u.applyEffects(ctx, updated, res.Effects); err != nil {
		return entities.BookingRequest{}, err
	}
	return updated, nil
}

// Reject declines the booking and moves the pipeline to lost. Rejecting an
// already-rejected booking is a no-op success.
func (u *BookingLifecycleUseCase) Reject(ctx context.Context, id, notes string) (entities.BookingRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BookingRequest{}, ErrInvalidBookingID
	}

	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.BookingRequest{}, err
	}
	if b.Status == entities.BookingStatusRejected {
		return b, nil
	}

	res, ok := entities.Transition(b.Status, entities.EventReject)
	if !ok {
		return entities.BookingRequest{}, ErrInvalidTransition
	}

	updated, err := u.bookingRepo.UpdateStatus(ctx, b.ID, b.Status, entities.BookingStatusChange{Status: res.Next, Notes: notes})
	if err != nil {
		return entities.BookingRequest{}, err
	}

	if err := u.applyEffects(ctx, updated, res.Effects); err != nil {
		return entities.BookingRequest{}, err
	}
	return updated, nil
}

// MarkAsLead creates a new_lead opportunity for the booking without touching
// booking status. Fails with ErrDuplicateLead when one already exists.
func (u *BookingLifecycleUseCase) MarkAsLead(ctx context.Context, id string) (entities.Opportunity, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Opportunity{}, err
	}
	return u.pipeline.CreateLead(ctx, b.ID)
}

// Archive flags the booking out of the active view. Pure flag toggle: no
// side effects on opportunity or project. Archiving an archived booking is a
// no-op success.
func (u *BookingLifecycleUseCase) Archive(ctx context.Context, id, byUser string) (entities.BookingRequest, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.BookingRequest{}, err
	}
	if b.Archived() {
		return b, nil
	}
	now := time.Now().UTC()
	return u.bookingRepo.SetArchived(ctx, b.ID, &now, strings.TrimSpace(byUser))
}

func (u *BookingLifecycleUseCase) Unarchive(ctx context.Context, id string) (entities.BookingRequest, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.BookingRequest{}, err
	}
	if !b.Archived() {
		return b, nil
	}
	return u.bookingRepo.SetArchived(ctx, b.ID, nil, "")
}

// Delete runs the full detach-then-delete flow: admin role check, guard
// detach of every linked project, checkpoint, then the soft-delete flag.
// Any detach failure aborts before the flag is written, so the booking is
// never orphaned half-deleted; the caller retries and the flow resumes.
func (u *BookingLifecycleUseCase) Delete(ctx context.Context, id, requestedBy string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidBookingID
	}
	requestedBy = strings.TrimSpace(requestedBy)
	if requestedBy == "" {
		return ErrNotAuthorized
	}

	role, err := u.identity.ResolveRole(ctx, requestedBy)
	if err != nil {
		return err
	}
	if role != interfaces.RoleAdmin {
		return ErrNotAuthorized
	}

	b, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.guard.Detach(ctx, b.ID); err != nil {
		log.Printf("[booking][usecase] delete aborted booking_id=%s err=%v", b.ID, err)
		return err
	}
	if err := u.bookingRepo.SetCheckpoint(ctx, b.ID, CheckpointDetached); err != nil {
		return err
	}

	if _, err := u.SoftDelete(ctx, b.ID); err != nil {
		return err
	}
	log.Printf("[booking][usecase] deleted booking_id=%s by=%s", b.ID, requestedBy)
	return nil
}

// SoftDelete sets the permanent-delete flag. It refuses to run while any
// project still references the booking; callers must detach first.
func (u *BookingLifecycleUseCase) SoftDelete(ctx context.Context, id string) (entities.BookingRequest, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.BookingRequest{}, err
	}

	detached, err := u.guard.Detached(ctx, b.ID)
	if err != nil {
		return entities.BookingRequest{}, err
	}
	if !detached {
		return entities.BookingRequest{}, ErrPartialDetachFailure
	}
	return u.bookingRepo.MarkDeleted(ctx, b.ID)
}

// applyEffects executes transition side effects in the order the table
// returned them. Stage sync and provisioning failures propagate so the
// caller can retry (both are idempotent); notifications never do.
func (u *BookingLifecycleUseCase) applyEffects(ctx context.Context, b entities.BookingRequest, effects []entities.SideEffect) error {
	for _, effect := range effects {
		switch effect {
		case entities.EffectStageWon, entities.EffectStageLost, entities.EffectStageNegotiation:
			if err := u.pipeline.SetStageFromBookingStatus(ctx, b.ID, b.Status); err != nil {
				return err
			}
		case entities.EffectProvisionConversion:
			if err := u.conversion.OnApproval(ctx, b.ID); err != nil {
				return err
			}
		case entities.EffectNotifyApproved:
			u.notifier.Notify(interfaces.EventBookingApproved, b)
		case entities.EffectNotifyCountered:
			u.notifier.Notify(interfaces.EventBookingCountered, b)
		case entities.EffectNotifyRejected:
			u.notifier.Notify(interfaces.EventBookingRejected, b)
		default:
			log.Printf("[booking][usecase] unknown side effect booking_id=%s effect=%s", b.ID, effect)
		}
	}
	return nil
}
