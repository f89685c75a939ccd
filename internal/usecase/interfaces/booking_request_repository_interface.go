package interfaces

import (
	"context"
	"errors"
	"time"

	"studioops/internal/domain/entities"
)

// ErrStaleWrite is returned by repositories when an optimistic status write
// finds the row no longer in the state the caller read. The caller must
// re-fetch the authoritative row and decide whether to retry; it must never
// fall back to its pre-write cached guess.
var ErrStaleWrite = errors.New("stale write: row changed concurrently")

// IBookingRequestRepository abstracts DynamoDB persistence for
// BookingRequest.
//
// Visibility contract: GetByID and both listings never return rows with
// deleted_permanently=true; ListActive additionally excludes archived rows.
// UpdateStatus conditions the write on fromStatus and surfaces ErrStaleWrite
// when the condition fails.

type IBookingRequestRepository interface {
	Create(ctx context.Context, b entities.BookingRequest) (entities.BookingRequest, error)
	GetByID(ctx context.Context, id string) (entities.BookingRequest, error)
	ListActive(ctx context.Context) ([]entities.BookingRequest, error)
	ListArchived(ctx context.Context) ([]entities.BookingRequest, error)
	UpdateStatus(ctx context.Context, id string, fromStatus entities.BookingStatus, change entities.BookingStatusChange) (entities.BookingRequest, error)
	SetArchived(ctx context.Context, id string, archivedAt *time.Time, archivedBy string) (entities.BookingRequest, error)
	SetCheckpoint(ctx context.Context, id, checkpoint string) error
	MarkDeleted(ctx context.Context, id string) (entities.BookingRequest, error)
}
