package router

import (
	"net/http"

	bookingHandler "ticketbari/internal/module/booking/handler"
	paymentHandler "ticketbari/internal/module/payment/handler"
	"ticketbari/internal/pkg/helpers"
	"ticketbari/internal/pkg/metrics"
	"ticketbari/internal/pkg/middleware"
	"ticketbari/internal/pkg/redis"
	"ticketbari/internal/pkg/scheduler"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	goredis "github.com/redis/go-redis/v9"
)

type Handlers struct {
	Booking *bookingHandler.BookingHandler
	Payment *paymentHandler.PaymentHandler
}

// Initialize mounts every route. monitoring is nil when the asynqmon
// dashboard is disabled.
func Initialize(app *fiber.App, handlers Handlers, m *middleware.Middleware, rdb goredis.Cmdable, monitoring http.Handler) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		if err := redis.HealthCheck(c.UserContext(), rdb); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(helpers.Response{Message: err.Error()})
		}
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	app.Get("/metrics", metrics.Handler())

	if monitoring != nil {
		app.All(scheduler.MonitoringRootPath+"/*", adaptor.HTTPHandler(monitoring))
	}

	Api := app.Group("/api")

	v1 := Api.Group("/v1", m.ValidateToken)
	v1.Post("/bookings", handlers.Booking.CreateBooking)
	v1.Get("/bookings", handlers.Booking.ShowBookings)
	v1.Get("/vendor/bookings", handlers.Booking.ShowVendorBookings)
	v1.Patch("/bookings/:id/accept", handlers.Booking.AcceptBooking)
	v1.Patch("/bookings/:id/reject", handlers.Booking.RejectBooking)

	v1.Post("/payments/checkout", handlers.Payment.CreateCheckoutSession)
	v1.Post("/payments/reconcile", handlers.Payment.ReconcilePayment)
	v1.Get("/payments", handlers.Payment.ListPayments)

	return app
}
