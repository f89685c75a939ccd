package interfaces

import (
	"context"
	"time"

	"studioops/internal/domain/entities"
)

// IMeetingRepository abstracts DynamoDB persistence for Meeting.
//
// ConsumeOutcome writes the outcome and the consumed-at marker in one
// conditional update; when the marker is already set the zero value is
// returned with a nil error so a duplicate trigger is a no-op for the caller.

type IMeetingRepository interface {
	Create(ctx context.Context, meeting entities.Meeting) (entities.Meeting, error)
	GetByID(ctx context.Context, id string) (entities.Meeting, error)
	ConsumeOutcome(ctx context.Context, id string, outcome entities.MeetingOutcome, at time.Time) (entities.Meeting, error)
}
