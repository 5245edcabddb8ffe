package repositories_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"ticketbari/internal/module/payment/models/entity"
	"ticketbari/internal/module/payment/repositories"
	"ticketbari/internal/pkg/errors"
	log_internal "ticketbari/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var mock sqlxmock.Sqlmock

func setup(t *testing.T) repositories.Repositories {
	t.Helper()
	db, m, err := sqlxmock.Newx()
	require.NoError(t, err)
	mock = m
	t.Cleanup(func() { db.Close() })
	return repositories.New(db, log_internal.New(log_internal.Setup()), nil, nil, time.Second)
}

func newPayment() entity.Payment {
	now := time.Now().UTC()
	return entity.Payment{
		ID:            uuid.NewString(),
		BookingID:     uuid.NewString(),
		TicketID:      uuid.NewString(),
		Amount:        decimal.RequireFromString("241.00"),
		Currency:      "usd",
		CustomerEmail: "user@test.com",
		TransactionID: "pi_test_1",
		TrackingID:    "TKT-20261015-0A1B2C",
		Status:        "paid",
		PaidAt:        now,
		CreatedAt:     now,
	}
}

func TestSettleBooking(t *testing.T) {
	gate := regexp.QuoteMeta(`UPDATE bookings SET status = $1, tracking_id = $2, updated_at = NOW() WHERE id = $3 AND status = $4`)

	t.Run("first settlement inserts payment", func(t *testing.T) {
		repo := setup(t)
		p := newPayment()

		mock.ExpectBegin()
		mock.ExpectExec(gate).WithArgs("paid", p.TrackingID, p.BookingID, "accepted").WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO payments").WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectCommit()

		applied, err := repo.SettleBooking(context.Background(), p)

		require.NoError(t, err)
		assert.True(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already paid writes nothing", func(t *testing.T) {
		repo := setup(t)
		p := newPayment()

		mock.ExpectBegin()
		mock.ExpectExec(gate).WithArgs("paid", p.TrackingID, p.BookingID, "accepted").WillReturnResult(sqlxmock.NewResult(0, 0))
		mock.ExpectRollback()

		applied, err := repo.SettleBooking(context.Background(), p)

		require.NoError(t, err)
		assert.False(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("booking not accepted writes nothing", func(t *testing.T) {
		repo := setup(t)
		p := newPayment()

		mock.ExpectBegin()
		mock.ExpectExec(gate).WithArgs("paid", p.TrackingID, p.BookingID, "accepted").WillReturnResult(sqlxmock.NewResult(0, 0))
		mock.ExpectRollback()

		applied, err := repo.SettleBooking(context.Background(), p)

		require.NoError(t, err)
		assert.False(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back the status change", func(t *testing.T) {
		repo := setup(t)
		p := newPayment()

		mock.ExpectBegin()
		mock.ExpectExec(gate).WithArgs("paid", p.TrackingID, p.BookingID, "accepted").WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO payments").WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		_, err := repo.SettleBooking(context.Background(), p)

		assert.True(t, errors.Is(err, errors.KindStore))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindPaymentByTransactionID(t *testing.T) {
	query := regexp.QuoteMeta(`FROM payments WHERE transaction_id = $1`)
	cols := []string{"id", "booking_id", "ticket_id", "amount", "currency", "customer_email", "transaction_id", "tracking_id", "status", "paid_at", "created_at"}

	t.Run("found", func(t *testing.T) {
		repo := setup(t)
		p := newPayment()
		mock.ExpectQuery(query).WithArgs(p.TransactionID).
			WillReturnRows(sqlxmock.NewRows(cols).AddRow(p.ID, p.BookingID, p.TicketID, "241.00", p.Currency, p.CustomerEmail, p.TransactionID, p.TrackingID, p.Status, p.PaidAt, p.CreatedAt))

		got, err := repo.FindPaymentByTransactionID(context.Background(), p.TransactionID)

		require.NoError(t, err)
		assert.Equal(t, p.TrackingID, got.TrackingID)
		assert.True(t, p.Amount.Equal(got.Amount))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo := setup(t)
		mock.ExpectQuery(query).WithArgs("pi_missing").WillReturnError(sql.ErrNoRows)

		_, err := repo.FindPaymentByTransactionID(context.Background(), "pi_missing")

		assert.True(t, errors.Is(err, errors.KindNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindPaymentsByEmail(t *testing.T) {
	repo := setup(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM payments WHERE customer_email = $1 ORDER BY paid_at DESC`)).
		WithArgs("user@test.com").
		WillReturnError(sql.ErrConnDone)

	_, err := repo.FindPaymentsByEmail(context.Background(), "user@test.com")

	assert.Equal(t, errors.InternalServerError("error find payments by email"), err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindCheckoutSession(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT booking_id, session_id, url, expires_at, created_at FROM checkout_sessions WHERE booking_id = $1`)
	cols := []string{"booking_id", "session_id", "url", "expires_at", "created_at"}

	t.Run("found", func(t *testing.T) {
		repo := setup(t)
		bookingID := uuid.NewString()
		expiresAt := time.Now().Add(30 * time.Minute).UTC()
		mock.ExpectQuery(query).WithArgs(bookingID).
			WillReturnRows(sqlxmock.NewRows(cols).AddRow(bookingID, "cs_test_1", "https://checkout.stripe.com/c/pay/cs_test_1", expiresAt, time.Now().UTC()))

		got, err := repo.FindCheckoutSession(context.Background(), bookingID)

		require.NoError(t, err)
		assert.Equal(t, "cs_test_1", got.SessionID)
		assert.Equal(t, expiresAt, got.ExpiresAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo := setup(t)
		mock.ExpectQuery(query).WithArgs("b-missing").WillReturnError(sql.ErrNoRows)

		_, err := repo.FindCheckoutSession(context.Background(), "b-missing")

		assert.True(t, errors.Is(err, errors.KindNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInsertCheckoutSession(t *testing.T) {
	repo := setup(t)
	session := entity.CheckoutSession{
		BookingID: uuid.NewString(),
		SessionID: "cs_test_1",
		URL:       "https://checkout.stripe.com/c/pay/cs_test_1",
		ExpiresAt: time.Now().Add(30 * time.Minute).UTC(),
		CreatedAt: time.Now().UTC(),
	}
	mock.ExpectExec("INSERT INTO checkout_sessions").
		WithArgs(session.BookingID, session.SessionID, session.URL, session.ExpiresAt, session.CreatedAt).
		WillReturnResult(sqlxmock.NewResult(0, 1))

	assert.NoError(t, repo.InsertCheckoutSession(context.Background(), session))
	assert.NoError(t, mock.ExpectationsWereMet())
}
