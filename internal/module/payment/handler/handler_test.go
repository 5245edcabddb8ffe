package handler_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"ticketbari/internal/module/payment/handler"
	"ticketbari/internal/module/payment/mocks"
	"ticketbari/internal/module/payment/models/request"
	"ticketbari/internal/module/payment/models/response"
	"ticketbari/internal/pkg/authz"
	"ticketbari/internal/pkg/errors"
	"ticketbari/internal/pkg/helpers"
	log_internal "ticketbari/internal/pkg/log"
	"ticketbari/internal/pkg/middleware"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	h   *handler.PaymentHandler
	ucm *mocks.Usecase
	app *fiber.App

	buyer = authz.Identity{UserID: "u-1", Email: "user@test.com", Role: authz.RoleUser}
)

func setup(t *testing.T) {
	ucm = mocks.NewUsecase(t)
	h = &handler.PaymentHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
	}
	app = fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(middleware.IdentityKey, buyer)
		return c.Next()
	})
	app.Post("/payments/checkout", h.CreateCheckoutSession)
	app.Post("/payments/reconcile", h.ReconcilePayment)
	app.Get("/payments", h.ListPayments)
}

func TestCreateCheckoutSession(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup(t)
		payload := request.CreateCheckoutSession{BookingID: uuid.NewString()}
		ucm.On("CreateCheckoutSession", mock.Anything, buyer, &payload).
			Return(response.CheckoutSession{SessionID: "cs_1", URL: "https://checkout.stripe.com/c/pay/cs_1"}, nil)

		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(fiber.MethodPost, "/payments/checkout", bytes.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing booking id", func(t *testing.T) {
		setup(t)

		req := httptest.NewRequest(fiber.MethodPost, "/payments/checkout", bytes.NewReader([]byte(`{}`)))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestReconcilePayment(t *testing.T) {
	t.Run("not paid is success shaped", func(t *testing.T) {
		setup(t)
		ucm.On("ReconcilePayment", mock.Anything, &request.ReconcilePayment{SessionID: "cs_1"}).
			Return(response.Reconciliation{Success: false, Message: "payment status is unpaid"}, nil)

		req := httptest.NewRequest(fiber.MethodPost, "/payments/reconcile", bytes.NewReader([]byte(`{"session_id":"cs_1"}`)))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			Data response.Reconciliation `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.Data.Success)
	})

	t.Run("provider error", func(t *testing.T) {
		setup(t)
		ucm.On("ReconcilePayment", mock.Anything, &request.ReconcilePayment{SessionID: "cs_1"}).
			Return(response.Reconciliation{}, errors.PaymentProviderError("payment provider unavailable"))

		req := httptest.NewRequest(fiber.MethodPost, "/payments/reconcile", bytes.NewReader([]byte(`{"session_id":"cs_1"}`)))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		var body helpers.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, errors.KindPaymentProvider, body.Error)
	})
}

func TestListPayments(t *testing.T) {
	setup(t)
	ucm.On("ListPayments", mock.Anything, buyer).Return([]response.Payment{{ID: "p-1"}}, nil)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/payments", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestConsumePaymentConfirmed(t *testing.T) {
	t.Run("reconciles session", func(t *testing.T) {
		setup(t)
		ucm.On("ReconcilePayment", mock.Anything, &request.ReconcilePayment{SessionID: "cs_1"}).
			Return(response.Reconciliation{Success: true, AlreadyProcessed: true}, nil)

		msg := message.NewMessage(watermill.NewUUID(), []byte(`{"session_id":"cs_1"}`))

		assert.NoError(t, h.ConsumePaymentConfirmed(msg))
	})

	t.Run("undecodable payload fails", func(t *testing.T) {
		setup(t)

		msg := message.NewMessage(watermill.NewUUID(), []byte(`not json`))

		assert.Error(t, h.ConsumePaymentConfirmed(msg))
	})

	t.Run("reconcile failure is returned for retry", func(t *testing.T) {
		setup(t)
		ucm.On("ReconcilePayment", mock.Anything, &request.ReconcilePayment{SessionID: "cs_1"}).
			Return(response.Reconciliation{}, errors.InternalServerError("error mark booking paid"))

		msg := message.NewMessage(watermill.NewUUID(), []byte(`{"session_id":"cs_1"}`))

		assert.Error(t, h.ConsumePaymentConfirmed(msg))
	})
}
