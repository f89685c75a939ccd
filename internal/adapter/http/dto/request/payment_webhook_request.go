package request

import "strings"

// PaymentWebhookRequest is the Mercado Pago notification envelope. The
// provider sends either a JSON body with data.id or the same id as a query
// parameter depending on the notification channel; ResolvePaymentID covers
// both.
type PaymentWebhookRequest struct {
	Action string `json:"action"`
	Type   string `json:"type"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (r PaymentWebhookRequest) ResolvePaymentID(queryID string) string {
	if v := strings.TrimSpace(r.Data.ID); v != "" {
		return v
	}
	return strings.TrimSpace(queryID)
}
