package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"studioops/internal/domain/entities"
	"studioops/internal/usecase/interfaces"
)

const notifyTimeout = 5 * time.Second

// WebhookNotifier posts lifecycle events to the notification service that
// fans them out as email/SMS. Dispatch happens on a goroutine so a slow or
// down notification service never blocks a booking transition; failures are
// logged and dropped.
//
// An empty NOTIFICATIONS_WEBHOOK_URL disables dispatch entirely, which is
// the local-dev default.

type WebhookNotifier struct {
	url    string
	client *http.Client
}

var _ interfaces.INotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier() *WebhookNotifier {
	url := strings.TrimSpace(os.Getenv("NOTIFICATIONS_WEBHOOK_URL"))
	if url == "" {
		log.Printf("[notify][infra] no NOTIFICATIONS_WEBHOOK_URL, notifications disabled")
	}
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: notifyTimeout},
	}
}

type notificationEvent struct {
	EventType    string  `json:"event_type"`
	BookingID    string  `json:"booking_id"`
	ContactName  string  `json:"contact_name"`
	ContactEmail string  `json:"contact_email"`
	ContactPhone string  `json:"contact_phone,omitempty"`
	Status       string  `json:"status"`
	Price        float64 `json:"price"`
	Notes        string  `json:"notes,omitempty"`
	OccurredAt   string  `json:"occurred_at"`
}

func (n *WebhookNotifier) Notify(eventType string, booking entities.BookingRequest) {
	if n.url == "" {
		return
	}
	event := notificationEvent{
		EventType:    eventType,
		BookingID:    booking.ID,
		ContactName:  booking.ContactName,
		ContactEmail: booking.ContactEmail,
		ContactPhone: booking.ContactPhone,
		Status:       string(booking.Status),
		Price:        booking.EffectivePrice(),
		Notes:        booking.Notes,
		OccurredAt:   time.Now().UTC().Format(time.RFC3339Nano),
	}
	go n.dispatch(event)
}

func (n *WebhookNotifier) dispatch(event notificationEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("[notify][infra] event marshal failed event_type=%s booking_id=%s err=%v", event.EventType, event.BookingID, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		log.Printf("[notify][infra] request build failed event_type=%s booking_id=%s err=%v", event.EventType, event.BookingID, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		log.Printf("[notify][infra] dispatch failed event_type=%s booking_id=%s err=%v", event.EventType, event.BookingID, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("[notify][infra] dispatch rejected event_type=%s booking_id=%s status=%d", event.EventType, event.BookingID, resp.StatusCode)
		return
	}
	log.Printf("[notify][infra] dispatched event_type=%s booking_id=%s", event.EventType, event.BookingID)
}
