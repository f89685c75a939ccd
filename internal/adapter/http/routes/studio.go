package routes

import (
	"studioops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBookings       = "/bookings"
	PathPayments       = "/payments"
	PathMeetings       = "/meetings"
	PathClientAccounts = "/client-accounts"
)

func addStudioRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler, paymentHandler *handlers.PaymentHandler, meetingHandler *handlers.MeetingHandler, clientAccountHandler *handlers.ClientAccountHandler) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("", bookingHandler.ListBookings)
		bookings.GET("/archived", bookingHandler.ListArchivedBookings)
		bookings.GET("/:id", bookingHandler.GetBooking)
		bookings.PATCH("/:id/approve", bookingHandler.ApproveBooking)
		bookings.PATCH("/:id/counter", bookingHandler.CounterBooking)
		bookings.PATCH("/:id/reject", bookingHandler.RejectBooking)
		bookings.POST("/:id/lead", bookingHandler.MarkBookingAsLead)
		bookings.PATCH("/:id/archive", bookingHandler.ArchiveBooking)
		bookings.PATCH("/:id/unarchive", bookingHandler.UnarchiveBooking)
		bookings.DELETE("/:id", bookingHandler.DeleteBooking)
		bookings.GET("/:id/payments", paymentHandler.GetPaymentSummary)
	}

	payments := rg.Group(PathPayments)
	{
		// Mercado Pago notification channel.
		payments.POST("/webhook", paymentHandler.IngestWebhook)
	}

	meetings := rg.Group(PathMeetings)
	{
		meetings.POST("", meetingHandler.ScheduleMeeting)
		meetings.PATCH("/:id/outcome", meetingHandler.RecordMeetingOutcome)
	}

	clientAccounts := rg.Group(PathClientAccounts)
	{
		clientAccounts.GET("/:id", clientAccountHandler.GetClientAccount)
		clientAccounts.PATCH("/:id/storage", clientAccountHandler.RecordStorageUsed)
	}
}
