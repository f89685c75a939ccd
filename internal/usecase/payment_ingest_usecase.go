package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"studioops/internal/domain/entities"
	"studioops/internal/usecase/interfaces"
)

var (
	ErrInvalidProviderPaymentID = errors.New("invalid provider payment id")
	ErrUnknownBookingReference  = errors.New("gateway payment carries no booking reference")
)

// IPaymentIngestUseCase appends gateway webhook events to the payments
// ledger. This is the only write path into the ledger.

type IPaymentIngestUseCase interface {
	IngestProviderEvent(ctx context.Context, providerPaymentID string) (entities.Payment, error)
}

// PaymentIngestUseCase resolves a provider payment and appends it as a
// ledger row. Ingest is idempotent on the provider payment id: a redelivered
// webhook returns the already-stored row untouched.
type PaymentIngestUseCase struct {
	paymentRepo interfaces.IPaymentRepository
	gateway     interfaces.IPaymentGateway
}

var _ IPaymentIngestUseCase = (*PaymentIngestUseCase)(nil)

func NewPaymentIngestUseCase(paymentRepo interfaces.IPaymentRepository, gateway interfaces.IPaymentGateway) *PaymentIngestUseCase {
	return &PaymentIngestUseCase{paymentRepo: paymentRepo, gateway: gateway}
}

func (u *PaymentIngestUseCase) IngestProviderEvent(ctx context.Context, providerPaymentID string) (entities.Payment, error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if providerPaymentID == "" {
		return entities.Payment{}, ErrInvalidProviderPaymentID
	}
	log.Printf("[payment][usecase] ingest start provider_payment_id=%s", providerPaymentID)

	existing, err := u.paymentRepo.GetByID(ctx, providerPaymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if existing.ID != "" {
		log.Printf("[payment][usecase] ingest duplicate delivery provider_payment_id=%s", providerPaymentID)
		return existing, nil
	}

	gp, err := u.gateway.GetPayment(ctx, providerPaymentID)
	if err != nil {
		log.Printf("[payment][usecase] gateway resolve failed provider_payment_id=%s err=%v", providerPaymentID, err)
		return entities.Payment{}, err
	}
	if strings.TrimSpace(gp.ExternalReference) == "" {
		return entities.Payment{}, ErrUnknownBookingReference
	}

	status := mapProviderStatus(gp.Status)
	p := entities.Payment{
		ID:        gp.ID,
		BookingID: gp.ExternalReference,
		Amount:    gp.Amount,
		Type:      mapPaymentType(gp.PaymentType),
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	if status == entities.PaymentStatusPaid {
		p.PaidAt = gp.DateApproved
	}

	created, err := u.paymentRepo.Create(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}
	if created.ID == "" {
		// A concurrent delivery won the conditional put.
		return u.paymentRepo.GetByID(ctx, providerPaymentID)
	}
	log.Printf("[payment][usecase] ingest success provider_payment_id=%s booking_id=%s status=%s amount=%.2f", created.ID, created.BookingID, created.Status, created.Amount)
	return created, nil
}

func mapProviderStatus(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "accredited":
		return entities.PaymentStatusPaid
	case "pending", "in_process", "authorized":
		return entities.PaymentStatusPending
	default:
		return entities.PaymentStatusFailed
	}
}

func mapPaymentType(providerType string) entities.PaymentType {
	switch strings.ToLower(strings.TrimSpace(providerType)) {
	case string(entities.PaymentTypeDeposit):
		return entities.PaymentTypeDeposit
	case string(entities.PaymentTypeBalance):
		return entities.PaymentTypeBalance
	default:
		return entities.PaymentTypeCustom
	}
}
