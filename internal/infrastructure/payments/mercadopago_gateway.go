package payments

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"studioops/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidProviderPaymentID = errors.New("provider payment id is not numeric")

// MercadoPagoGateway resolves webhook payment notifications against the
// Mercado Pago API. In mock mode (local dev, CI) it fabricates an approved
// payment instead of calling out.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, providerPaymentID string) (interfaces.GatewayPayment, error) {
	if g != nil && g.mockMode {
		return g.mockPayment(providerPaymentID), nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.GatewayPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	numericID, err := strconv.Atoi(strings.TrimSpace(providerPaymentID))
	if err != nil {
		return interfaces.GatewayPayment{}, ErrInvalidProviderPaymentID
	}

	log.Printf("[payment][gateway] get start provider_payment_id=%d", numericID)
	resp, err := g.client.Get(ctx, numericID)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed provider_payment_id=%d err=%v", numericID, err)
		return interfaces.GatewayPayment{}, err
	}

	gp := interfaces.GatewayPayment{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		Amount:            resp.TransactionAmount,
		ExternalReference: resp.ExternalReference,
		PaymentType:       metadataPaymentType(resp.Metadata),
	}
	if !resp.DateApproved.IsZero() {
		approvedAt := resp.DateApproved.UTC()
		gp.DateApproved = &approvedAt
	}
	log.Printf("[payment][gateway] get success provider_payment_id=%s provider_status=%s amount=%.2f", gp.ID, gp.Status, gp.Amount)
	return gp, nil
}

// mockPayment fabricates an approved payment so the full webhook ingest path
// can run locally without Mercado Pago credentials. The booking reference
// comes from PAYMENT_GATEWAY_MOCK_BOOKING_ID.
func (g *MercadoPagoGateway) mockPayment(providerPaymentID string) interfaces.GatewayPayment {
	now := time.Now().UTC()
	gp := interfaces.GatewayPayment{
		ID:                providerPaymentID,
		Status:            "approved",
		Amount:            mockAmount(),
		ExternalReference: os.Getenv("PAYMENT_GATEWAY_MOCK_BOOKING_ID"),
		PaymentType:       "deposit",
		DateApproved:      &now,
	}
	log.Printf("[payment][gateway] mock get success provider_payment_id=%s provider_status=approved", providerPaymentID)
	return gp
}

func mockAmount() float64 {
	if v := os.Getenv("PAYMENT_GATEWAY_MOCK_AMOUNT"); v != "" {
		if amount, err := strconv.ParseFloat(v, 64); err == nil && amount > 0 {
			return amount
		}
	}
	return 100
}

// metadataPaymentType reads the ledger row type the checkout flow stamped
// into the payment metadata. Unknown or missing values fall through to the
// caller's default.
func metadataPaymentType(metadata map[string]any) string {
	if metadata == nil {
		return ""
	}
	if v, ok := metadata["payment_type"].(string); ok {
		return v
	}
	return ""
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
