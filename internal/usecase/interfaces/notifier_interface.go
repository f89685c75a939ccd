package interfaces

import "studioops/internal/domain/entities"

// INotifier dispatches email/SMS for lifecycle transitions.
//
// The contract is fire-and-forget: implementations must return immediately
// and never block the transition that triggered them. Delivery failures are
// logged by the implementation and are never surfaced to callers.

type INotifier interface {
	Notify(eventType string, booking entities.BookingRequest)
}

// Notification event types published by the lifecycle manager.
const (
	EventBookingReceived  = "booking_received"
	EventBookingApproved  = "booking_approved"
	EventBookingCountered = "booking_countered"
	EventBookingRejected  = "booking_rejected"
)
