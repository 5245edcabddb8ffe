package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	bookingTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_transitions_total",
			Help: "Booking state transitions by target status and outcome",
		},
		[]string{"status", "outcome"},
	)

	paymentReconciliations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_reconciliations_total",
			Help: "Payment reconciliation attempts by outcome",
		},
		[]string{"outcome"},
	)

	checkoutSessions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_sessions_total",
			Help: "Checkout sessions created by outcome",
		},
		[]string{"outcome"},
	)
)

func TrackBookingTransition(status, outcome string) {
	bookingTransitions.WithLabelValues(status, outcome).Inc()
}

func TrackReconciliation(outcome string) {
	paymentReconciliations.WithLabelValues(outcome).Inc()
}

func TrackCheckoutSession(outcome string) {
	checkoutSessions.WithLabelValues(outcome).Inc()
}

// Handler exposes the default registry for fiber.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
