package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studioops/internal/adapter/http/handlers/mocks"
	"studioops/internal/domain/entities"
	"studioops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_GetPaymentSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		aggregator := mocks.NewMockIPaymentAggregatorUseCase(ctrl)
		ingest := mocks.NewMockIPaymentIngestUseCase(ctrl)
		h := NewPaymentHandler(aggregator, ingest)

		r := gin.New()
		r.GET("/v1/bookings/:id/payments", h.GetPaymentSummary)

		aggregator.EXPECT().Summary(gomock.Any(), "missing").Return(usecase.PaymentSummary{}, usecase.ErrBookingNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/missing/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		aggregator := mocks.NewMockIPaymentAggregatorUseCase(ctrl)
		ingest := mocks.NewMockIPaymentIngestUseCase(ctrl)
		h := NewPaymentHandler(aggregator, ingest)

		r := gin.New()
		r.GET("/v1/bookings/:id/payments", h.GetPaymentSummary)

		paidAt := time.Now().UTC()
		aggregator.EXPECT().Summary(gomock.Any(), "b-1").Return(usecase.PaymentSummary{
			BookingID: "b-1",
			Payments: []entities.Payment{
				{ID: "pay-1", BookingID: "b-1", Amount: 1500, Type: entities.PaymentTypeDeposit, Status: entities.PaymentStatusPaid, PaidAt: &paidAt},
			},
			TotalPaid:       1500,
			AggregateStatus: usecase.AggregateStatusPaid,
			Outstanding:     2500,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/b-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total_paid"] != 1500.0 || body["aggregate_status"] != "paid" || body["outstanding"] != 2500.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_IngestWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("payment id from body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		aggregator := mocks.NewMockIPaymentAggregatorUseCase(ctrl)
		ingest := mocks.NewMockIPaymentIngestUseCase(ctrl)
		h := NewPaymentHandler(aggregator, ingest)

		r := gin.New()
		r.POST("/v1/payments/webhook", h.IngestWebhook)

		ingest.EXPECT().IngestProviderEvent(gomock.Any(), "12345").Return(entities.Payment{
			ID:        "12345",
			BookingID: "b-1",
			Amount:    1500,
			Type:      entities.PaymentTypeDeposit,
			Status:    entities.PaymentStatusPaid,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBufferString(`{"action":"payment.created","type":"payment","data":{"id":"12345"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "12345" || body["booking_id"] != "b-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("payment id from query parameter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		aggregator := mocks.NewMockIPaymentAggregatorUseCase(ctrl)
		ingest := mocks.NewMockIPaymentIngestUseCase(ctrl)
		h := NewPaymentHandler(aggregator, ingest)

		r := gin.New()
		r.POST("/v1/payments/webhook", h.IngestWebhook)

		ingest.EXPECT().IngestProviderEvent(gomock.Any(), "67890").Return(entities.Payment{ID: "67890", BookingID: "b-2"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook?data.id=67890", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing payment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		aggregator := mocks.NewMockIPaymentAggregatorUseCase(ctrl)
		ingest := mocks.NewMockIPaymentIngestUseCase(ctrl)
		h := NewPaymentHandler(aggregator, ingest)

		r := gin.New()
		r.POST("/v1/payments/webhook", h.IngestWebhook)

		ingest.EXPECT().IngestProviderEvent(gomock.Any(), "").Return(entities.Payment{}, usecase.ErrInvalidProviderPaymentID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("payment without booking reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		aggregator := mocks.NewMockIPaymentAggregatorUseCase(ctrl)
		ingest := mocks.NewMockIPaymentIngestUseCase(ctrl)
		h := NewPaymentHandler(aggregator, ingest)

		r := gin.New()
		r.POST("/v1/payments/webhook", h.IngestWebhook)

		ingest.EXPECT().IngestProviderEvent(gomock.Any(), "12345").Return(entities.Payment{}, usecase.ErrUnknownBookingReference)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBufferString(`{"data":{"id":"12345"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestMapPaymentError(t *testing.T) {
	if got := mapPaymentError(usecase.ErrInvalidBookingID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPaymentError(usecase.ErrInvalidProviderPaymentID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPaymentError(usecase.ErrUnknownBookingReference); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapPaymentError(usecase.ErrBookingNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPaymentError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
