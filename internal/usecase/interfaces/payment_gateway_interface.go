package interfaces

import (
	"context"
	"time"
)

// GatewayPayment is the provider-side view of a payment, resolved when a
// webhook event arrives. ExternalReference carries the booking id the
// payment link was created with.

type GatewayPayment struct {
	ID                string
	Status            string
	Amount            float64
	ExternalReference string
	PaymentType       string
	DateApproved      *time.Time
}

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// The service never creates or mutates provider payments; it only resolves
// the payment a webhook event refers to before appending a ledger row.

type IPaymentGateway interface {
	GetPayment(ctx context.Context, providerPaymentID string) (GatewayPayment, error)
}
