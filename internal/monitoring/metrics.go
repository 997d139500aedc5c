package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "happenix_bookings_created_total",
			Help: "Bookings created (fresh rows)",
		},
	)

	BookingsReactivated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "happenix_bookings_reactivated_total",
			Help: "Cancelled bookings re-confirmed",
		},
	)

	BookingsCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "happenix_bookings_cancelled_total",
			Help: "Bookings cancelled by their owner",
		},
	)

	BookingsAttended = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "happenix_bookings_attended_total",
			Help: "Bookings transitioned to attended",
		},
	)

	TicketIssueFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "happenix_ticket_issue_failures_total",
			Help: "Ticket issuance attempts that left a booking pending",
		},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "happenix_notifications_sent_total",
			Help: "Notification dispatch outcomes",
		},
		[]string{"kind", "status"},
	)
)
