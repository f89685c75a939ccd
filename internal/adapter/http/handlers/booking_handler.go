package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "studioops/internal/adapter/http/dto/request"
	response "studioops/internal/adapter/http/dto/response"
	"studioops/internal/usecase"
	"studioops/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)

// BookingHandler handles HTTP requests for the booking request lifecycle.
type BookingHandler struct {
	usecase usecase.IBookingLifecycleUseCase
}

func NewBookingHandler(uc usecase.IBookingLifecycleUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// CreateBooking registers a new booking request from the public intake form.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateBookingInput{
		ContactName:    payload.ContactName,
		ContactEmail:   payload.ContactEmail,
		ContactPhone:   payload.ContactPhone,
		EventType:      payload.EventType,
		EventDate:      payload.EventDate,
		RequestedPrice: payload.RequestedPrice,
		DepositAmount:  payload.DepositAmount,
		Notes:          payload.Notes,
	})
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBookingRequest(created))
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.usecase.ListActive(c.Request.Context())
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookingRequests(bookings))
}

func (h *BookingHandler) ListArchivedBookings(c *gin.Context) {
	bookings, err := h.usecase.ListArchived(c.Request.Context())
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookingRequests(bookings))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookingRequest(booking))
}

func (h *BookingHandler) ApproveBooking(c *gin.Context) {
	id := c.Param("id")
	var payload request.ApproveBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	log.Printf("[booking][handler] approve start booking_id=%s approved_price=%.2f", id, payload.ApprovedPrice)
	booking, err := h.usecase.Approve(c.Request.Context(), id, payload.ApprovedPrice, payload.Notes)
	if err != nil {
		log.Printf("[booking][handler] approve failed booking_id=%s err=%v", id, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookingRequest(booking))
}

func (h *BookingHandler) CounterBooking(c *gin.Context) {
	id := c.Param("id")
	var payload request.CounterBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.Counter(c.Request.Context(), id, payload.CounterPrice, payload.Notes)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookingRequest(booking))
}

func (h *BookingHandler) RejectBooking(c *gin.Context) {
	id := c.Param("id")
	var payload request.RejectBookingRequest
	// A body is optional on reject.
	_ = c.ShouldBindJSON(&payload)

	booking, err := h.usecase.Reject(c.Request.Context(), id, payload.Notes)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookingRequest(booking))
}

// MarkBookingAsLead creates a pipeline opportunity for the booking without
// touching its status.
func (h *BookingHandler) MarkBookingAsLead(c *gin.Context) {
	id := c.Param("id")
	opportunity, err := h.usecase.MarkAsLead(c.Request.Context(), id)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOpportunity(opportunity))
}

func (h *BookingHandler) ArchiveBooking(c *gin.Context) {
	id := c.Param("id")
	var payload request.ArchiveBookingRequest
	_ = c.ShouldBindJSON(&payload)

	archivedBy := payload.ResolveArchivedBy()
	if archivedBy == "" {
		archivedBy = strings.TrimSpace(c.GetHeader("X-User-ID"))
	}

	booking, err := h.usecase.Archive(c.Request.Context(), id, archivedBy)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookingRequest(booking))
}

func (h *BookingHandler) UnarchiveBooking(c *gin.Context) {
	booking, err := h.usecase.Unarchive(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookingRequest(booking))
}

// DeleteBooking runs the admin-only detach-then-delete flow. The acting user
// comes from the X-User-ID header set by the edge proxy.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id := c.Param("id")
	requestedBy := strings.TrimSpace(c.GetHeader("X-User-ID"))
	log.Printf("[booking][handler] delete start booking_id=%s requested_by=%s", id, requestedBy)

	if err := h.usecase.Delete(c.Request.Context(), id, requestedBy); err != nil {
		log.Printf("[booking][handler] delete failed booking_id=%s err=%v", id, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID), errors.Is(err, usecase.ErrInvalidPrice), errors.Is(err, usecase.ErrInvalidContact):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCounterEqualsRequested):
		return pkg.NewDomainErrorSimple("COUNTER_EQUALS_REQUESTED", "Counter price must differ from the requested price", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Booking is not in a state that permits this action", http.StatusConflict)
	case errors.Is(err, usecase.ErrStaleWrite):
		return pkg.NewDomainErrorSimple("STALE_WRITE", "Booking was changed concurrently, reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateLead):
		return pkg.NewDomainErrorSimple("LEAD_ALREADY_EXISTS", "An opportunity already exists for this booking", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("NOT_AUTHORIZED", "Only admins may delete booking requests", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPartialDetachFailure):
		return pkg.NewDomainErrorSimple("PARTIAL_DETACH_FAILURE", "Could not clear all project references, retry the delete", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
