package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"studioops/internal/domain/entities"
	mock_interfaces "studioops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newAggregator(t *testing.T) (*PaymentAggregatorUseCase, *mock_interfaces.MockIPaymentRepository, *mock_interfaces.MockIBookingRequestRepository) {
	ctrl := gomock.NewController(t)
	paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	bookingRepo := mock_interfaces.NewMockIBookingRequestRepository(ctrl)
	return NewPaymentAggregatorUseCase(paymentRepo, bookingRepo), paymentRepo, bookingRepo
}

func TestAggregateStatusOf(t *testing.T) {
	tests := []struct {
		name     string
		statuses []entities.PaymentStatus
		want     string
	}{
		{"empty ledger", nil, AggregateStatusNone},
		{"paid wins over pending", []entities.PaymentStatus{entities.PaymentStatusPending, entities.PaymentStatusPaid}, AggregateStatusPaid},
		{"paid wins over failed", []entities.PaymentStatus{entities.PaymentStatusFailed, entities.PaymentStatusPaid}, AggregateStatusPaid},
		{"pending wins over failed", []entities.PaymentStatus{entities.PaymentStatusFailed, entities.PaymentStatusPending}, AggregateStatusPending},
		{"all failed", []entities.PaymentStatus{entities.PaymentStatusFailed, entities.PaymentStatusFailed}, AggregateStatusFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payments []entities.Payment
			for _, s := range tt.statuses {
				payments = append(payments, entities.Payment{Status: s})
			}
			if got := AggregateStatusOf(payments); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestTotalPaidOf(t *testing.T) {
	payments := []entities.Payment{
		{Status: entities.PaymentStatusPaid, Amount: 1000},
		{Status: entities.PaymentStatusPending, Amount: 500},
		{Status: entities.PaymentStatusPaid, Amount: 250},
		{Status: entities.PaymentStatusFailed, Amount: 9999},
	}
	if got := TotalPaidOf(payments); got != 1250 {
		t.Fatalf("expected 1250, got %.2f", got)
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Now().UTC()
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name    string
		payment entities.Payment
		want    bool
	}{
		{"pending past due", entities.Payment{Status: entities.PaymentStatusPending, DueDate: &past}, true},
		{"pending not yet due", entities.Payment{Status: entities.PaymentStatusPending, DueDate: &future}, false},
		{"pending without due date", entities.Payment{Status: entities.PaymentStatusPending}, false},
		{"paid past due date", entities.Payment{Status: entities.PaymentStatusPaid, DueDate: &past}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOverdue(tt.payment, now); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPaymentAggregatorUseCase_Summary(t *testing.T) {
	t.Run("booking not found", func(t *testing.T) {
		uc, _, bookingRepo := newAggregator(t)
		bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.BookingRequest{}, nil)

		_, err := uc.Summary(context.Background(), "b-1")
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("uses approved price as effective price", func(t *testing.T) {
		uc, paymentRepo, bookingRepo := newAggregator(t)
		approved := 4000.0
		bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.BookingRequest{
			ID:             "b-1",
			RequestedPrice: 5000,
			ApprovedPrice:  &approved,
		}, nil)
		past := time.Now().UTC().Add(-time.Hour)
		paymentRepo.EXPECT().ListByBookingID(gomock.Any(), "b-1").Return([]entities.Payment{
			{ID: "pay-1", Status: entities.PaymentStatusPaid, Amount: 1500},
			{ID: "pay-2", Status: entities.PaymentStatusPending, Amount: 2500, DueDate: &past},
		}, nil)

		s, err := uc.Summary(context.Background(), "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TotalPaid != 1500 {
			t.Fatalf("expected total 1500, got %.2f", s.TotalPaid)
		}
		if s.Outstanding != 2500 {
			t.Fatalf("expected outstanding 2500, got %.2f", s.Outstanding)
		}
		if s.AggregateStatus != AggregateStatusPaid {
			t.Fatalf("expected paid, got %s", s.AggregateStatus)
		}
		if len(s.OverdueIDs) != 1 || s.OverdueIDs[0] != "pay-2" {
			t.Fatalf("expected pay-2 overdue, got %v", s.OverdueIDs)
		}
	})

	t.Run("overpayment yields negative outstanding", func(t *testing.T) {
		uc, paymentRepo, bookingRepo := newAggregator(t)
		bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.BookingRequest{
			ID:             "b-1",
			RequestedPrice: 1000,
		}, nil)
		paymentRepo.EXPECT().ListByBookingID(gomock.Any(), "b-1").Return([]entities.Payment{
			{ID: "pay-1", Status: entities.PaymentStatusPaid, Amount: 1200},
		}, nil)

		s, err := uc.Summary(context.Background(), "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Outstanding != -200 {
			t.Fatalf("expected -200 outstanding, got %.2f", s.Outstanding)
		}
	})

	t.Run("empty ledger", func(t *testing.T) {
		uc, paymentRepo, bookingRepo := newAggregator(t)
		bookingRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.BookingRequest{ID: "b-1", RequestedPrice: 1000}, nil)
		paymentRepo.EXPECT().ListByBookingID(gomock.Any(), "b-1").Return(nil, nil)

		s, err := uc.Summary(context.Background(), "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.AggregateStatus != AggregateStatusNone || s.TotalPaid != 0 || s.Outstanding != 1000 {
			t.Fatalf("unexpected summary %+v", s)
		}
	})
}
