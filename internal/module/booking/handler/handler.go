package handler

import (
	"context"
	"fmt"

	"ticketbari/internal/module/booking/models/request"
	"ticketbari/internal/module/booking/usecases"
	"ticketbari/internal/pkg/errors"
	"ticketbari/internal/pkg/helpers"
	"ticketbari/internal/pkg/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.CreateBooking(ctx.UserContext(), middleware.Identity(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create booking")
}

func (h *BookingHandler) AcceptBooking(ctx *fiber.Ctx) error {
	req, err := h.parseDecision(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.AcceptBooking(ctx.UserContext(), middleware.Identity(ctx), req.BookingID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error accept booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	message := "success accept booking"
	if resp.AlreadyApplied {
		message = "booking already accepted"
	}
	return helpers.RespSuccess(ctx, h.Log, resp, message)
}

func (h *BookingHandler) RejectBooking(ctx *fiber.Ctx) error {
	req, err := h.parseDecision(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.RejectBooking(ctx.UserContext(), middleware.Identity(ctx), req.BookingID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error reject booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	message := "success reject booking"
	if resp.AlreadyApplied {
		message = "booking already rejected"
	}
	return helpers.RespSuccess(ctx, h.Log, resp, message)
}

func (h *BookingHandler) ShowBookings(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ShowBookings(ctx.UserContext(), middleware.Identity(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show bookings")
}

func (h *BookingHandler) ShowVendorBookings(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ShowVendorBookings(ctx.UserContext(), middleware.Identity(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show vendor bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show vendor bookings")
}

// SetPaymentExpired handles the scheduled expiry of a checkout window.
func (h *BookingHandler) SetPaymentExpired(ctx context.Context, t *asynq.Task) error {
	var req request.PaymentExpiration
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return fmt.Errorf("validate payload: %v: %w", err, asynq.SkipRetry)
	}

	if err := h.Usecase.ExpireBooking(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error set payment expired: %v", err))
		return err
	}

	return nil
}

func (h *BookingHandler) parseDecision(ctx *fiber.Ctx) (request.BookingDecision, error) {
	var req request.BookingDecision
	if err := ctx.ParamsParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse params: %v", err))
		return req, errors.BadRequest("error parse params")
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate params: %v", err))
		return req, errors.BadRequest(err.Error())
	}

	return req, nil
}
