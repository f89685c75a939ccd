package handlers

import (
	"errors"
	"log"
	"net/http"

	request "studioops/internal/adapter/http/dto/request"
	response "studioops/internal/adapter/http/dto/response"
	"studioops/internal/usecase"
	"studioops/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles the read-side payment summary and the provider
// webhook ingest path.
type PaymentHandler struct {
	aggregator usecase.IPaymentAggregatorUseCase
	ingest     usecase.IPaymentIngestUseCase
}

func NewPaymentHandler(aggregator usecase.IPaymentAggregatorUseCase, ingest usecase.IPaymentIngestUseCase) *PaymentHandler {
	return &PaymentHandler{aggregator: aggregator, ingest: ingest}
}

// GetPaymentSummary returns the folded ledger view for a booking.
func (h *PaymentHandler) GetPaymentSummary(c *gin.Context) {
	bookingID := c.Param("id")
	summary, err := h.aggregator.Summary(c.Request.Context(), bookingID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentSummary(summary))
}

// IngestWebhook receives a Mercado Pago payment notification and appends the
// resolved payment to the ledger. Redeliveries return 200 with the stored
// row so the provider stops retrying.
func (h *PaymentHandler) IngestWebhook(c *gin.Context) {
	var payload request.PaymentWebhookRequest
	_ = c.ShouldBindJSON(&payload)

	paymentID := payload.ResolvePaymentID(c.Query("data.id"))
	if paymentID == "" {
		paymentID = c.Query("id")
	}
	log.Printf("[payment][handler] webhook received provider_payment_id=%s action=%s", paymentID, payload.Action)

	created, err := h.ingest.IngestProviderEvent(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] webhook ingest failed provider_payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(created))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID), errors.Is(err, usecase.ErrInvalidProviderPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownBookingReference):
		return pkg.NewDomainErrorSimple("UNKNOWN_BOOKING_REFERENCE", "Payment carries no booking reference", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking request not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
