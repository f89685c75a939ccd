package handlers

import (
	"errors"
	"log"
	"net/http"

	request "studioops/internal/adapter/http/dto/request"
	response "studioops/internal/adapter/http/dto/response"
	"studioops/internal/domain/entities"
	"studioops/internal/usecase"
	"studioops/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidMeetingPayload = pkg.NewDomainErrorSimple("INVALID_MEETING_INPUT", "Invalid meeting payload", http.StatusBadRequest)

// MeetingHandler handles the meeting-outcome trigger into the pipeline.
type MeetingHandler struct {
	usecase usecase.IPipelineSyncUseCase
}

func NewMeetingHandler(uc usecase.IPipelineSyncUseCase) *MeetingHandler {
	return &MeetingHandler{usecase: uc}
}

// ScheduleMeeting creates a meeting. Every link in the payload is optional,
// but a link that is present must point at an existing row.
func (h *MeetingHandler) ScheduleMeeting(c *gin.Context) {
	var payload request.ScheduleMeetingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMeetingPayload.HTTPStatus, errInvalidMeetingPayload.ToHTTPError())
		return
	}

	meeting, err := h.usecase.ScheduleMeeting(c.Request.Context(), usecase.ScheduleMeetingInput{
		ScheduledAt:   payload.ScheduledAt,
		BookingID:     payload.BookingID,
		OpportunityID: payload.OpportunityID,
		ProjectID:     payload.ProjectID,
		ClientID:      payload.ClientID,
	})
	if err != nil {
		log.Printf("[meeting][handler] schedule failed err=%v", err)
		appErr := mapMeetingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMeeting(meeting))
}

// RecordMeetingOutcome records an outcome and applies it to the linked
// opportunity's stage. A meeting without a linked opportunity answers 200
// with skipped=true and the reason.
func (h *MeetingHandler) RecordMeetingOutcome(c *gin.Context) {
	id := c.Param("id")
	var payload request.MeetingOutcomeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMeetingPayload.HTTPStatus, errInvalidMeetingPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.ApplyMeetingOutcome(c.Request.Context(), id, entities.MeetingOutcome(payload.ResolveOutcome()))
	if err != nil {
		log.Printf("[meeting][handler] outcome failed meeting_id=%s err=%v", id, err)
		appErr := mapMeetingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := response.MeetingOutcomeResponse{Skipped: result.Skipped, Reason: result.Reason}
	if result.Opportunity.ID != "" {
		o := response.FromOpportunity(result.Opportunity)
		out.Opportunity = &o
	}
	c.JSON(http.StatusOK, out)
}

func mapMeetingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMeetingID), errors.Is(err, usecase.ErrInvalidOutcome),
		errors.Is(err, usecase.ErrInvalidMeetingTime), errors.Is(err, usecase.ErrInvalidBookingID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMeetingNotFound):
		return pkg.NewDomainErrorSimple("MEETING_NOT_FOUND", "Meeting not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOpportunityNotFound):
		return pkg.NewDomainErrorSimple("OPPORTUNITY_NOT_FOUND", "Opportunity not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
