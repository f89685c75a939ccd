package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"studioops/internal/domain/entities"
	"studioops/internal/usecase/interfaces"
	mock_interfaces "studioops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newIngest(t *testing.T) (*PaymentIngestUseCase, *mock_interfaces.MockIPaymentRepository, *mock_interfaces.MockIPaymentGateway) {
	ctrl := gomock.NewController(t)
	paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	return NewPaymentIngestUseCase(paymentRepo, gateway), paymentRepo, gateway
}

func TestPaymentIngestUseCase_IngestProviderEvent(t *testing.T) {
	t.Run("empty provider id", func(t *testing.T) {
		uc, _, _ := newIngest(t)
		_, err := uc.IngestProviderEvent(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidProviderPaymentID) {
			t.Fatalf("expected ErrInvalidProviderPaymentID, got %v", err)
		}
	})

	t.Run("redelivery returns stored row without gateway call", func(t *testing.T) {
		uc, paymentRepo, _ := newIngest(t)
		stored := entities.Payment{ID: "mp-1", BookingID: "b-1", Status: entities.PaymentStatusPaid, Amount: 1500}
		paymentRepo.EXPECT().GetByID(gomock.Any(), "mp-1").Return(stored, nil)

		p, err := uc.IngestProviderEvent(context.Background(), "mp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "mp-1" || p.Amount != 1500 {
			t.Fatalf("expected stored row, got %+v", p)
		}
	})

	t.Run("missing booking reference rejected", func(t *testing.T) {
		uc, paymentRepo, gateway := newIngest(t)
		paymentRepo.EXPECT().GetByID(gomock.Any(), "mp-1").Return(entities.Payment{}, nil)
		gateway.EXPECT().GetPayment(gomock.Any(), "mp-1").Return(interfaces.GatewayPayment{ID: "mp-1", Status: "approved"}, nil)

		_, err := uc.IngestProviderEvent(context.Background(), "mp-1")
		if !errors.Is(err, ErrUnknownBookingReference) {
			t.Fatalf("expected ErrUnknownBookingReference, got %v", err)
		}
	})

	t.Run("approved payment stored as paid", func(t *testing.T) {
		uc, paymentRepo, gateway := newIngest(t)
		approvedAt := time.Now().UTC()
		paymentRepo.EXPECT().GetByID(gomock.Any(), "mp-1").Return(entities.Payment{}, nil)
		gateway.EXPECT().GetPayment(gomock.Any(), "mp-1").Return(interfaces.GatewayPayment{
			ID:                "mp-1",
			Status:            "approved",
			Amount:            1500,
			ExternalReference: "b-1",
			PaymentType:       "deposit",
			DateApproved:      &approvedAt,
		}, nil)
		paymentRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID != "mp-1" || p.BookingID != "b-1" {
					t.Fatalf("unexpected payment %+v", p)
				}
				if p.Status != entities.PaymentStatusPaid || p.Type != entities.PaymentTypeDeposit {
					t.Fatalf("unexpected mapping %+v", p)
				}
				if p.PaidAt == nil {
					t.Fatalf("expected paid_at")
				}
				return p, nil
			},
		)

		if _, err := uc.IngestProviderEvent(context.Background(), "mp-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("concurrent delivery re-reads winner row", func(t *testing.T) {
		uc, paymentRepo, gateway := newIngest(t)
		winner := entities.Payment{ID: "mp-1", BookingID: "b-1", Status: entities.PaymentStatusPaid}
		first := paymentRepo.EXPECT().GetByID(gomock.Any(), "mp-1").Return(entities.Payment{}, nil)
		gateway.EXPECT().GetPayment(gomock.Any(), "mp-1").Return(interfaces.GatewayPayment{ID: "mp-1", Status: "approved", Amount: 1500, ExternalReference: "b-1"}, nil)
		paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Payment{}, nil)
		paymentRepo.EXPECT().GetByID(gomock.Any(), "mp-1").Return(winner, nil).After(first)

		p, err := uc.IngestProviderEvent(context.Background(), "mp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "mp-1" {
			t.Fatalf("expected winner row, got %+v", p)
		}
	})
}

func TestMapProviderStatus(t *testing.T) {
	tests := []struct {
		in   string
		want entities.PaymentStatus
	}{
		{"approved", entities.PaymentStatusPaid},
		{"accredited", entities.PaymentStatusPaid},
		{"pending", entities.PaymentStatusPending},
		{"in_process", entities.PaymentStatusPending},
		{"authorized", entities.PaymentStatusPending},
		{"rejected", entities.PaymentStatusFailed},
		{"cancelled", entities.PaymentStatusFailed},
		{"", entities.PaymentStatusFailed},
	}
	for _, tt := range tests {
		if got := mapProviderStatus(tt.in); got != tt.want {
			t.Fatalf("mapProviderStatus(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
