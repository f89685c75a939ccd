package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"studioops/internal/usecase/interfaces"
)

var ErrPartialDetachFailure = errors.New("could not clear all project references")

// detachAttempts bounds retries of a single project detach write before the
// whole operation is reported as partial.
const detachAttempts = 3

// IntegrityGuardUseCase executes cascading cleanup ahead of destructive
// booking operations.
//
// The store offers no cross-row transactions, so Detach is built to be
// re-run: projects are processed in a fixed order (sorted by id), each clear
// is idempotent, and any failure aborts the dependent delete with
// ErrPartialDetachFailure while already-cleared rows stay cleared. A retry
// converges on the same end state.

type IntegrityGuardUseCase struct {
	projectRepo interfaces.IProjectRepository
}

var _ interfaces.IIntegrityGuard = (*IntegrityGuardUseCase)(nil)

func NewIntegrityGuardUseCase(projectRepo interfaces.IProjectRepository) *IntegrityGuardUseCase {
	return &IntegrityGuardUseCase{projectRepo: projectRepo}
}

// Detach clears booking_id on every project referencing the booking. It only
// returns nil once all detaches are acknowledged.
func (u *IntegrityGuardUseCase) Detach(ctx context.Context, bookingID string) error {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return ErrInvalidBookingID
	}

	projects, err := u.projectRepo.ListByBookingID(ctx, bookingID)
	if err != nil {
		return err
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })

	var failed []string
	for _, p := range projects {
		if p.BookingID == "" {
			continue
		}
		var lastErr error
		for attempt := 1; attempt <= detachAttempts; attempt++ {
			lastErr = u.projectRepo.ClearBookingRef(ctx, p.ID)
			if lastErr == nil {
				break
			}
			log.Printf("[guard][usecase] detach attempt failed booking_id=%s project_id=%s attempt=%d err=%v", bookingID, p.ID, attempt, lastErr)
		}
		if lastErr != nil {
			failed = append(failed, p.ID)
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("%w: booking_id=%s projects=%v", ErrPartialDetachFailure, bookingID, failed)
	}
	return nil
}

// Detached reports whether no project still references the booking.
func (u *IntegrityGuardUseCase) Detached(ctx context.Context, bookingID string) (bool, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return false, ErrInvalidBookingID
	}

	projects, err := u.projectRepo.ListByBookingID(ctx, bookingID)
	if err != nil {
		return false, err
	}
	for _, p := range projects {
		if p.BookingID != "" {
			return false, nil
		}
	}
	return true, nil
}
