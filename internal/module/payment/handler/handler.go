package handler

import (
	"fmt"

	"ticketbari/internal/module/payment/models/request"
	"ticketbari/internal/module/payment/usecases"
	"ticketbari/internal/pkg/errors"
	"ticketbari/internal/pkg/helpers"
	"ticketbari/internal/pkg/middleware"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type PaymentHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *PaymentHandler) CreateCheckoutSession(ctx *fiber.Ctx) error {
	var req request.CreateCheckoutSession
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.CreateCheckoutSession(ctx.UserContext(), middleware.Identity(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create checkout session: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success create checkout session")
}

func (h *PaymentHandler) ReconcilePayment(ctx *fiber.Ctx) error {
	var req request.ReconcilePayment
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.ReconcilePayment(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error reconcile payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, resp.Message)
}

func (h *PaymentHandler) ListPayments(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ListPayments(ctx.UserContext(), middleware.Identity(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list payments: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list payments")
}

// ConsumePaymentConfirmed reconciles sessions announced on the
// payment_confirmed topic. A returned error is retried by the router and
// poisoned once retries run out.
func (h *PaymentHandler) ConsumePaymentConfirmed(msg *message.Message) error {
	var req request.PaymentConfirmed
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error validate message: %v", err))
		return err
	}

	resp, err := h.Usecase.ReconcilePayment(msg.Context(), &request.ReconcilePayment{SessionID: req.SessionID})
	if err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error reconcile payment %s: %v", req.SessionID, err))
		return err
	}

	h.Log.Ctx(msg.Context()).Info(fmt.Sprintf("payment confirmed %s: success=%t already_processed=%t", req.SessionID, resp.Success, resp.AlreadyProcessed))
	return nil
}
