package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "washq",
			Name:      "booking_created_total",
			Help:      "Count of bookings accepted into the queue.",
		},
	)

	bookingConflict = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "washq",
			Name:      "booking_conflict_total",
			Help:      "Count of booking attempts rejected because the slot was taken.",
		},
	)

	adminDecision = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "washq",
			Name:      "admin_decision_total",
			Help:      "Count of admin status decisions over bookings.",
		},
		[]string{"status"},
	)

	notificationOutcome = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "washq",
			Name:      "notification_total",
			Help:      "Count of LINE push notifications by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingConflict, adminDecision, notificationOutcome)
	})
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncBookingConflict() {
	bookingConflict.Inc()
}

func IncAdminDecision(status string) {
	adminDecision.WithLabelValues(status).Inc()
}

func IncNotification(kind string, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	notificationOutcome.WithLabelValues(kind, outcome).Inc()
}
