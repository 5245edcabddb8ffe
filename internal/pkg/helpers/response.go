package helpers

import (
	"ticketbari/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Message string      `json:"message"`
	Error   errors.Kind `json:"error"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return RespStatus(ctx, log, fiber.StatusOK, data, message)
}

func RespCreated(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return RespStatus(ctx, log, fiber.StatusCreated, data, message)
}

func RespStatus(ctx *fiber.Ctx, log *otelzap.Logger, status int, data interface{}, message string) error {
	if log != nil {
		log.Ctx(ctx.UserContext()).Debug(message, zap.Int("status", status), zap.String("path", ctx.Path()))
	}
	return ctx.Status(status).JSON(Response{
		Message: message,
		Data:    data,
	})
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	status := errors.HTTPStatus(err)
	message := err.Error()
	if !errors.IsCustom(err) {
		// driver and runtime errors never leak to the client
		message = "internal server error"
	}

	if log != nil {
		log.Ctx(ctx.UserContext()).Warn("request failed",
			zap.Int("status", status),
			zap.String("path", ctx.Path()),
			zap.Error(err),
		)
	}

	return ctx.Status(status).JSON(ErrorResponse{
		Message: message,
		Error:   errors.KindOf(err),
	})
}
