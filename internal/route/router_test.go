package router_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	bookingHandler "ticketbari/internal/module/booking/handler"
	bookingMocks "ticketbari/internal/module/booking/mocks"
	paymentHandler "ticketbari/internal/module/payment/handler"
	paymentMocks "ticketbari/internal/module/payment/mocks"
	log_internal "ticketbari/internal/pkg/log"
	"ticketbari/internal/pkg/middleware"
	router "ticketbari/internal/route"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redismock/v9"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) (*fiber.App, redismock.ClientMock) {
	rdb, redisMock := redismock.NewClientMock()
	logZap := log_internal.Setup()
	validate := validator.New()

	handlers := router.Handlers{
		Booking: &bookingHandler.BookingHandler{Log: logZap, Validator: validate, Usecase: bookingMocks.NewUsecase(t)},
		Payment: &paymentHandler.PaymentHandler{Log: logZap, Validator: validate, Usecase: paymentMocks.NewUsecase(t)},
	}
	m := &middleware.Middleware{Log: logZap, Repo: bookingMocks.NewRepositories(t)}

	return router.Initialize(fiber.New(), handlers, m, rdb, nil), redisMock
}

func TestHealth(t *testing.T) {
	t.Run("redis reachable", func(t *testing.T) {
		app, redisMock := newApp(t)
		redisMock.ExpectPing().SetVal("PONG")

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("redis down", func(t *testing.T) {
		app, redisMock := newApp(t)
		redisMock.ExpectPing().SetErr(errors.New("connection refused"))

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	app, _ := newApp(t)

	for _, tc := range []struct{ method, path string }{
		{fiber.MethodPost, "/api/v1/bookings"},
		{fiber.MethodPatch, "/api/v1/bookings/0b5c6a9e-3f7e-4f1b-9c49-6a3b1b2d2f10/accept"},
		{fiber.MethodPost, "/api/v1/payments/reconcile"},
		{fiber.MethodGet, "/api/v1/payments"},
	} {
		resp, err := app.Test(httptest.NewRequest(tc.method, tc.path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, tc.path)
	}
}

func TestMetricsExposed(t *testing.T) {
	app, _ := newApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
