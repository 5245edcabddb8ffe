package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	bookingEntity "ticketbari/internal/module/booking/models/entity"
	bookingRequest "ticketbari/internal/module/booking/models/request"
	"ticketbari/internal/module/payment/models/entity"
	"ticketbari/internal/pkg/errors"
	"ticketbari/internal/pkg/log"
	"ticketbari/internal/pkg/scheduler"

	"github.com/go-redsync/redsync/v4"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
)

const (
	bookingColumns = `id, ticket_id, user_email, vendor_email, quantity, status, tracking_id, created_at, updated_at`
	ticketColumns  = `id, vendor_email, title, price, quantity, status, advertised, departure_at, created_at`
	paymentColumns = `id, booking_id, ticket_id, amount, currency, customer_email, transaction_id, tracking_id, status, paid_at, created_at`
	sessionColumns = `booking_id, session_id, url, expires_at, created_at`

	checkoutLockPrefix = "checkout:"
	expiryTaskPrefix   = "payment-expired:"
)

type repositories struct {
	db         *sqlx.DB
	log        log.Logger
	redsync    *redsync.Redsync
	asynq      *asynq.Client
	lockExpiry time.Duration
}

type Repositories interface {
	// db
	FindBookingByID(ctx context.Context, bookingID string) (bookingEntity.Booking, error)
	FindTicketByID(ctx context.Context, ticketID string) (bookingEntity.Ticket, error)
	SettleBooking(ctx context.Context, payment entity.Payment) (bool, error)
	FindPaymentByTransactionID(ctx context.Context, transactionID string) (entity.Payment, error)
	FindPayments(ctx context.Context) ([]entity.Payment, error)
	FindPaymentsByEmail(ctx context.Context, email string) ([]entity.Payment, error)
	FindCheckoutSession(ctx context.Context, bookingID string) (entity.CheckoutSession, error)
	InsertCheckoutSession(ctx context.Context, session entity.CheckoutSession) error
	// redis
	LockCheckout(ctx context.Context, bookingID string) (func(), error)
	// scheduler
	SetTaskScheduler(ctx context.Context, processAt time.Time, payload bookingRequest.PaymentExpiration) error
}

func New(db *sqlx.DB, log log.Logger, rs *redsync.Redsync, asynqClient *asynq.Client, lockExpiry time.Duration) Repositories {
	return &repositories{
		db:         db,
		log:        log,
		redsync:    rs,
		asynq:      asynqClient,
		lockExpiry: lockExpiry,
	}
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID string) (bookingEntity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	var booking bookingEntity.Booking
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if err == sql.ErrNoRows {
		return bookingEntity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find booking by id", err)
		return bookingEntity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// FindTicketByID implements Repositories.
func (r *repositories) FindTicketByID(ctx context.Context, ticketID string) (bookingEntity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`
	var ticket bookingEntity.Ticket
	err := r.db.GetContext(ctx, &ticket, query, ticketID)
	if err == sql.ErrNoRows {
		return bookingEntity.Ticket{}, errors.NotFound("ticket not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find ticket by id", err)
		return bookingEntity.Ticket{}, errors.InternalServerError("error find ticket by id")
	}
	return ticket, nil
}

// SettleBooking implements Repositories. It marks the booking paid and
// records the payment in one transaction. Only an accepted booking moves to
// paid: false means the booking was already settled, released or never
// accepted, and nothing was written.
func (r *repositories) SettleBooking(ctx context.Context, payment entity.Payment) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error(ctx, "error starting transaction", err)
		return false, errors.InternalServerError("error starting transaction")
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE bookings SET status = $1, tracking_id = $2, updated_at = NOW() WHERE id = $3 AND status = $4`,
		bookingEntity.BookingStatusPaid, payment.TrackingID, payment.BookingID, bookingEntity.BookingStatusAccepted)
	if err != nil {
		r.log.Error(ctx, "error mark booking paid", err)
		return false, errors.InternalServerError("error mark booking paid")
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.log.Error(ctx, "error read affected rows", err)
		return false, errors.InternalServerError("error mark booking paid")
	}
	if n == 0 {
		return false, nil
	}

	query := `
		INSERT INTO payments (id, booking_id, ticket_id, amount, currency, customer_email, transaction_id, tracking_id, status, paid_at, created_at)
		VALUES (:id, :booking_id, :ticket_id, :amount, :currency, :customer_email, :transaction_id, :tracking_id, :status, :paid_at, :created_at)`
	if _, err := tx.NamedExecContext(ctx, query, payment); err != nil {
		r.log.Error(ctx, "error insert payment", err)
		return false, errors.InternalServerError("error insert payment")
	}

	if err := tx.Commit(); err != nil {
		r.log.Error(ctx, "error committing transaction", err)
		return false, errors.InternalServerError("error committing transaction")
	}
	return true, nil
}

// FindPaymentByTransactionID implements Repositories.
func (r *repositories) FindPaymentByTransactionID(ctx context.Context, transactionID string) (entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE transaction_id = $1`
	var payment entity.Payment
	err := r.db.GetContext(ctx, &payment, query, transactionID)
	if err == sql.ErrNoRows {
		return entity.Payment{}, errors.NotFound("payment not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find payment by transaction id", err)
		return entity.Payment{}, errors.InternalServerError("error find payment by transaction id")
	}
	return payment, nil
}

// FindPayments implements Repositories.
func (r *repositories) FindPayments(ctx context.Context) ([]entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY paid_at DESC`
	payments := []entity.Payment{}
	if err := r.db.SelectContext(ctx, &payments, query); err != nil {
		r.log.Error(ctx, "error find payments", err)
		return nil, errors.InternalServerError("error find payments")
	}
	return payments, nil
}

// FindPaymentsByEmail implements Repositories.
func (r *repositories) FindPaymentsByEmail(ctx context.Context, email string) ([]entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE customer_email = $1 ORDER BY paid_at DESC`
	payments := []entity.Payment{}
	if err := r.db.SelectContext(ctx, &payments, query, email); err != nil {
		r.log.Error(ctx, "error find payments by email", err)
		return nil, errors.InternalServerError("error find payments by email")
	}
	return payments, nil
}

// FindCheckoutSession implements Repositories.
func (r *repositories) FindCheckoutSession(ctx context.Context, bookingID string) (entity.CheckoutSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM checkout_sessions WHERE booking_id = $1`
	var session entity.CheckoutSession
	err := r.db.GetContext(ctx, &session, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.CheckoutSession{}, errors.NotFound("checkout session not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find checkout session", err)
		return entity.CheckoutSession{}, errors.InternalServerError("error find checkout session")
	}
	return session, nil
}

// InsertCheckoutSession implements Repositories.
func (r *repositories) InsertCheckoutSession(ctx context.Context, session entity.CheckoutSession) error {
	query := `
		INSERT INTO checkout_sessions (booking_id, session_id, url, expires_at, created_at)
		VALUES (:booking_id, :session_id, :url, :expires_at, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, session); err != nil {
		r.log.Error(ctx, "error insert checkout session", err)
		return errors.InternalServerError("error insert checkout session")
	}
	return nil
}

// LockCheckout implements Repositories. The returned func releases the lock.
func (r *repositories) LockCheckout(ctx context.Context, bookingID string) (func(), error) {
	mutex := r.redsync.NewMutex(checkoutLockPrefix+bookingID,
		redsync.WithExpiry(r.lockExpiry),
		redsync.WithTries(8),
	)

	if err := mutex.LockContext(ctx); err != nil {
		r.log.Warn(ctx, "error acquire checkout lock", bookingID, err)
		return nil, errors.BadRequest("a checkout for this booking is already in progress")
	}

	return func() {
		if _, err := mutex.UnlockContext(context.WithoutCancel(ctx)); err != nil {
			r.log.Warn(ctx, "error release checkout lock", bookingID, err)
		}
	}, nil
}

// SetTaskScheduler implements Repositories. One expiry task exists per
// booking; a second enqueue for the same booking is ignored.
func (r *repositories) SetTaskScheduler(ctx context.Context, processAt time.Time, payload bookingRequest.PaymentExpiration) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal expiry payload: %w", err)
	}

	task := asynq.NewTask(scheduler.TypeSetPaymentExpired, data)
	info, err := r.asynq.EnqueueContext(ctx, task,
		asynq.ProcessAt(processAt),
		asynq.TaskID(expiryTaskPrefix+payload.BookingID),
		asynq.MaxRetry(3),
	)
	if stderrors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	if err != nil {
		r.log.Error(ctx, "error enqueue payment expiry", err)
		return errors.InternalServerError("error schedule payment expiry")
	}

	r.log.Info(ctx, "payment expiry scheduled", info.ID, processAt)
	return nil
}
