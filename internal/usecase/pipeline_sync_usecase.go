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
	ErrDuplicateLead       = errors.New("opportunity already exists for this booking")
	ErrOpportunityNotFound = errors.New("opportunity not found")
	ErrProjectNotFound     = errors.New("project not found")
	ErrMeetingNotFound     = errors.New("meeting not found")
	ErrInvalidMeetingID    = errors.New("invalid meeting id")
	ErrInvalidMeetingTime  = errors.New("invalid meeting time")
	ErrInvalidOutcome      = errors.New("invalid meeting outcome")
)

// outcomeStages is the fixed meeting-outcome → pipeline-stage table.
var outcomeStages = map[entities.MeetingOutcome]entities.OpportunityStage{
	entities.OutcomeNoShow:       entities.StageLost,
	entities.OutcomeNotQualified: entities.StageLost,
	entities.OutcomeQualified:    entities.StageQualified,
	entities.OutcomeProposalSent: entities.StageProposal,
	entities.OutcomeNegotiating:  entities.StageNegotiation,
	entities.OutcomeWon:          entities.StageWon,
}

// bookingStatusStages maps booking status to the stage the opportunity should
// follow it to. Pending and lead are intentionally absent: those statuses
// never move an existing opportunity.
var bookingStatusStages = map[entities.BookingStatus]entities.OpportunityStage{
	entities.BookingStatusApproved:  entities.StageWon,
	entities.BookingStatusRejected:  entities.StageLost,
	entities.BookingStatusCountered: entities.StageNegotiation,
}

// OutcomeResult reports what applying a meeting outcome did. Skipped=true
// with a reason means the trigger was consumed but no stage changed, which
// the UI surfaces instead of treating as an error.
type OutcomeResult struct {
	Opportunity entities.Opportunity
	Skipped     bool
	Reason      string
}

// ScheduleMeetingInput carries the links a new meeting may reference. All
// links are optional; set ones must point at existing rows.
type ScheduleMeetingInput struct {
	ScheduledAt   time.Time
	BookingID     string
	OpportunityID string
	ProjectID     string
	ClientID      string
}

// IPipelineSyncUseCase exposes pipeline synchronization operations.

type IPipelineSyncUseCase interface {
	EnsureOpportunity(ctx context.Context, bookingID string) (entities.Opportunity, error)
	CreateLead(ctx context.Context, bookingID string) (entities.Opportunity, error)
	SetStageFromBookingStatus(ctx context.Context, bookingID string, status entities.BookingStatus) error
	ScheduleMeeting(ctx context.Context, input ScheduleMeetingInput) (entities.Meeting, error)
	ApplyMeetingOutcome(ctx context.Context, meetingID string, outcome entities.MeetingOutcome) (OutcomeResult, error)
}

type PipelineSyncUseCase struct {
	opportunityRepo interfaces.IOpportunityRepository
	bookingRepo     interfaces.IBookingRequestRepository
	meetingRepo     interfaces.IMeetingRepository
	projectRepo     interfaces.IProjectRepository
}

var _ IPipelineSyncUseCase = (*PipelineSyncUseCase)(nil)
var _ interfaces.IPipelineSynchronizer = (*PipelineSyncUseCase)(nil)

func NewPipelineSyncUseCase(opportunityRepo interfaces.IOpportunityRepository, bookingRepo interfaces.IBookingRequestRepository, meetingRepo interfaces.IMeetingRepository, projectRepo interfaces.IProjectRepository) *PipelineSyncUseCase {
	return &PipelineSyncUseCase{opportunityRepo: opportunityRepo, bookingRepo: bookingRepo, meetingRepo: meetingRepo, projectRepo: projectRepo}
}

// EnsureOpportunity returns the non-deleted opportunity for the booking,
// creating one with a snapshot of the current contact fields when none
// exists. Idempotent: re-invocation returns the existing row.
func (u *PipelineSyncUseCase) EnsureOpportunity(ctx context.Context, bookingID string) (entities.Opportunity, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.Opportunity{}, ErrInvalidBookingID
	}

	existing, err := u.opportunityRepo.FindByBookingID(ctx, bookingID)
	if err != nil {
		return entities.Opportunity{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}

	b, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Opportunity{}, err
	}
	if b.ID == "" {
		return entities.Opportunity{}, ErrBookingNotFound
	}

	now := time.Now().UTC()
	o := entities.Opportunity{
		ID:           uuid.NewString(),
		BookingID:    b.ID,
		ContactName:  b.ContactName,
		ContactEmail: b.ContactEmail,
		ContactPhone: b.ContactPhone,
		Stage:        entities.StageNewLead,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.opportunityRepo.Create(ctx, o)
}

// CreateLead creates a new_lead opportunity for the booking and fails with
// ErrDuplicateLead when one already exists, unlike EnsureOpportunity.
func (u *PipelineSyncUseCase) CreateLead(ctx context.Context, bookingID string) (entities.Opportunity, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.Opportunity{}, ErrInvalidBookingID
	}

	existing, err := u.opportunityRepo.FindByBookingID(ctx, bookingID)
	if err != nil {
		return entities.Opportunity{}, err
	}
	if existing.ID != "" {
		return entities.Opportunity{}, ErrDuplicateLead
	}
	return u.EnsureOpportunity(ctx, bookingID)
}

// SetStageFromBookingStatus moves the booking's opportunity to the stage the
// new booking status implies. A status with no stage mapping is a no-op. A
// booking with no opportunity yet gets one created first, so an approved or
// rejected booking always lands in the pipeline.
func (u *PipelineSyncUseCase) SetStageFromBookingStatus(ctx context.Context, bookingID string, status entities.BookingStatus) error {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return ErrInvalidBookingID
	}

	stage, mapped := bookingStatusStages[status]
	if !mapped {
		return nil
	}

	o, err := u.EnsureOpportunity(ctx, bookingID)
	if err != nil {
		return err
	}

	_, err = u.opportunityRepo.UpdateStage(ctx, o.ID, stage)
	return err
}

// ScheduleMeeting creates a meeting after verifying every link it carries
// points at an existing row, then waits for its outcome to be recorded via
// ApplyMeetingOutcome.
func (u *PipelineSyncUseCase) ScheduleMeeting(ctx context.Context, input ScheduleMeetingInput) (entities.Meeting, error) {
	if input.ScheduledAt.IsZero() {
		return entities.Meeting{}, ErrInvalidMeetingTime
	}

	input.BookingID = strings.TrimSpace(input.BookingID)
	if input.BookingID != "" {
		b, err := u.bookingRepo.GetByID(ctx, input.BookingID)
		if err != nil {
			return entities.Meeting{}, err
		}
		if b.ID == "" {
			return entities.Meeting{}, ErrBookingNotFound
		}
	}

	input.OpportunityID = strings.TrimSpace(input.OpportunityID)
	if input.OpportunityID != "" {
		o, err := u.opportunityRepo.GetByID(ctx, input.OpportunityID)
		if err != nil {
			return entities.Meeting{}, err
		}
		if o.ID == "" {
			return entities.Meeting{}, ErrOpportunityNotFound
		}
	}

	input.ProjectID = strings.TrimSpace(input.ProjectID)
	if input.ProjectID != "" {
		p, err := u.projectRepo.GetByID(ctx, input.ProjectID)
		if err != nil {
			return entities.Meeting{}, err
		}
		if p.ID == "" {
			return entities.Meeting{}, ErrProjectNotFound
		}
	}

	now := time.Now().UTC()
	m := entities.Meeting{
		ID:            uuid.NewString(),
		ScheduledAt:   input.ScheduledAt.UTC(),
		BookingID:     input.BookingID,
		OpportunityID: input.OpportunityID,
		ProjectID:     input.ProjectID,
		ClientID:      strings.TrimSpace(input.ClientID),
		CreatedAt:     now,
	}
	return u.meetingRepo.Create(ctx, m)
}

// ApplyMeetingOutcome consumes a recorded meeting outcome exactly once and
// maps it to a pipeline stage. A meeting without a linked opportunity is a
// documented no-op: the outcome is still consumed, a warning is logged, and
// the result carries the skip reason.
func (u *PipelineSyncUseCase) ApplyMeetingOutcome(ctx context.Context, meetingID string, outcome entities.MeetingOutcome) (OutcomeResult, error) {
	meetingID = strings.TrimSpace(meetingID)
	if meetingID == "" {
		return OutcomeResult{}, ErrInvalidMeetingID
	}
	stage, known := outcomeStages[outcome]
	if !known {
		return OutcomeResult{}, ErrInvalidOutcome
	}

	m, err := u.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return OutcomeResult{}, err
	}
	if m.ID == "" {
		return OutcomeResult{}, ErrMeetingNotFound
	}
	if m.OutcomeConsumedAt != nil {
		return OutcomeResult{Skipped: true, Reason: "outcome already consumed"}, nil
	}

	consumed, err := u.meetingRepo.ConsumeOutcome(ctx, m.ID, outcome, time.Now().UTC())
	if err != nil {
		return OutcomeResult{}, err
	}
	if consumed.ID == "" {
		// A concurrent trigger won the conditional write.
		return OutcomeResult{Skipped: true, Reason: "outcome already consumed"}, nil
	}

	if consumed.OpportunityID == "" {
		log.Printf("[pipeline][usecase] meeting outcome without linked opportunity meeting_id=%s outcome=%s", m.ID, outcome)
		return OutcomeResult{Skipped: true, Reason: "meeting has no linked opportunity"}, nil
	}

	o, err := u.opportunityRepo.UpdateStage(ctx, consumed.OpportunityID, stage)
	if err != nil {
		return OutcomeResult{}, err
	}
	if o.ID == "" {
		return OutcomeResult{}, ErrOpportunityNotFound
	}
	return OutcomeResult{Opportunity: o}, nil
}
