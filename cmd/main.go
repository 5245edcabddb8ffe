package main

import (
	"context"
	"fmt"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"ticketbari/config"
	bookingHandler "ticketbari/internal/module/booking/handler"
	bookingRepositories "ticketbari/internal/module/booking/repositories"
	bookingUsecases "ticketbari/internal/module/booking/usecases"
	paymentHandler "ticketbari/internal/module/payment/handler"
	paymentRepositories "ticketbari/internal/module/payment/repositories"
	paymentUsecases "ticketbari/internal/module/payment/usecases"
	"ticketbari/internal/pkg/checkout"
	"ticketbari/internal/pkg/database"
	"ticketbari/internal/pkg/http"
	"ticketbari/internal/pkg/httpclient"
	log_internal "ticketbari/internal/pkg/log"
	"ticketbari/internal/pkg/messagestream"
	"ticketbari/internal/pkg/middleware"
	"ticketbari/internal/pkg/redis"
	"ticketbari/internal/pkg/scheduler"
	router "ticketbari/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/hibiken/asynq"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

func main() {
	cfg := config.InitConfig()

	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logZap); err != nil {
		logZap.Fatal("service stopped", zap.Error(err))
	}
	logZap.Info("service stopped")
}

func run(ctx context.Context, cfg *config.Config, logZap *otelzap.Logger) error {
	logger := log_internal.GetLogger()
	defer apm.DefaultTracer.Close()

	// init database
	db, err := database.GetConnection(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
	}

	// init redis
	rdb := redis.SetupClient(&cfg.Redis)
	defer rdb.Close()
	rs := redsync.New(goredis.NewPool(rdb))

	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	// init payment provider
	provider := checkout.NewStripeProvider(
		cfg.Payment.StripeSecretKey,
		nil,
		circuit.NewConsecutiveBreaker(cfg.Payment.BreakerFailures),
		cfg.Payment.ProviderTimeout,
	)

	// init message stream
	wmLogger := log_internal.NewWatermillAdapter(logZap.Logger)
	amqp := messagestream.NewAmpq(&cfg.MessageStream, wmLogger)

	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		return fmt.Errorf("create subscriber: %w", err)
	}
	defer subscriber.Close()

	publisher, err := amqp.NewPublisher()
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	defer publisher.Close()

	// init scheduler
	sched := scheduler.New(&cfg.Redis, logger)
	asynqClient := sched.InitClient()
	defer asynqClient.Close()

	validate := validator.New()

	bookingRepo := bookingRepositories.New(db, logger, httpClient, &cfg.UserService)
	bookingUsecase := bookingUsecases.New(bookingRepo, logger, publisher)
	bookingH := &bookingHandler.BookingHandler{
		Log:       logZap,
		Validator: validate,
		Usecase:   bookingUsecase,
	}

	paymentRepo := paymentRepositories.New(db, logger, rs, asynqClient, cfg.Payment.LockExpiry)
	paymentUsecase := paymentUsecases.New(paymentRepo, provider, logger, publisher, &cfg.Payment)
	paymentH := &paymentHandler.PaymentHandler{
		Log:       logZap,
		Validator: validate,
		Usecase:   paymentUsecase,
	}

	m := &middleware.Middleware{
		Log:  logZap,
		Repo: bookingRepo,
	}

	paymentConfirmedRouter, err := messagestream.NewRouter(
		wmLogger,
		cfg.MessageStream.MaxRetry,
		publisher,
		messagestream.TopicPaymentPoisoned,
		"payment_confirmed_handler",
		messagestream.TopicPaymentConfirmed,
		subscriber,
		paymentH.ConsumePaymentConfirmed,
	)
	if err != nil {
		return fmt.Errorf("create payment_confirmed router: %w", err)
	}
	defer paymentConfirmedRouter.Close()

	go func(r *message.Router) {
		if err := r.Run(ctx); err != nil {
			logger.Error(ctx, "message router stopped", err)
		}
	}(paymentConfirmedRouter)

	err = sched.StartHandler(&cfg.Scheduler,
		[]string{scheduler.TypeSetPaymentExpired},
		[]func(ctx context.Context, t *asynq.Task) error{bookingH.SetPaymentExpired},
	)
	if err != nil {
		return err
	}
	defer sched.Shutdown()

	var monitoring nethttp.Handler
	if cfg.Scheduler.MonitoringEnabled {
		monitoring = sched.MonitoringHandler()
	}

	app := http.SetupHttpEngine(logZap)
	router.Initialize(app, router.Handlers{Booking: bookingH, Payment: paymentH}, m, rdb, monitoring)

	logger.Info(ctx, "starting http server", cfg.HttpServer.Port)
	return http.StartHttpServer(ctx, app, cfg.HttpServer.Port, cfg.HttpServer.ShutdownTimeout, logZap)
}
