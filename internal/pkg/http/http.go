package http

import (
	"context"
	"fmt"
	"time"

	"ticketbari/internal/pkg/errors"
	"ticketbari/internal/pkg/helpers"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm/module/apmfiber"
)

func SetupHttpEngine(log *otelzap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:     "ticketbari-booking-service",
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				return helpers.RespError(ctx, log, httpError(fe))
			}
			return helpers.RespError(ctx, log, err)
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(apmfiber.Middleware())

	return app
}

func httpError(fe *fiber.Error) error {
	switch fe.Code {
	case fiber.StatusNotFound:
		return errors.NotFound(fe.Message)
	case fiber.StatusUnauthorized:
		return errors.UnauthorizedError(fe.Message)
	case fiber.StatusForbidden:
		return errors.ForbiddenError(fe.Message)
	case fiber.StatusInternalServerError:
		return errors.InternalServerError(fe.Message)
	default:
		return errors.BadRequest(fe.Message)
	}
}

// StartHttpServer blocks until ctx is cancelled, then drains in-flight
// requests.
func StartHttpServer(ctx context.Context, app *fiber.App, port string, shutdownTimeout time.Duration, log *otelzap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(fmt.Sprintf(":%s", port))
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Ctx(ctx).Info("shutting down http server")
	return app.ShutdownWithTimeout(shutdownTimeout)
}
