package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"

	"ticketbari/config"
	"ticketbari/internal/module/booking/models/entity"
	"ticketbari/internal/module/booking/models/response"
	"ticketbari/internal/pkg/errors"
	"ticketbari/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
	circuit "github.com/rubyist/circuitbreaker"
)

// ErrStatusChanged means the booking left the status the caller observed
// before the conditional write ran.
var ErrStatusChanged = stderrors.New("booking status changed concurrently")

const (
	bookingColumns = `id, ticket_id, user_email, vendor_email, quantity, status, tracking_id, created_at, updated_at`
	ticketColumns  = `id, vendor_email, title, price, quantity, status, advertised, departure_at, created_at`
	userColumns    = `id, email, name, photo_url, role, is_fraud, created_at`
)

type repositories struct {
	db             *sqlx.DB
	log            log.Logger
	httpClient     *circuit.HTTPClient
	cfgUserService *config.UserServiceConfig
}

type Repositories interface {
	// http
	ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error)
	// db
	FindUserByEmail(ctx context.Context, email string) (entity.User, error)
	FindTicketByID(ctx context.Context, ticketID string) (entity.Ticket, error)
	FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error)
	FindBookingsByUserEmail(ctx context.Context, email string) ([]entity.Booking, error)
	FindBookingsByVendorEmail(ctx context.Context, email string) ([]entity.Booking, error)
	InsertBooking(ctx context.Context, booking entity.Booking) error
	AcceptBooking(ctx context.Context, booking entity.Booking) error
	RejectBooking(ctx context.Context, booking entity.Booking) error
}

func New(db *sqlx.DB, log log.Logger, httpClient *circuit.HTTPClient, cfgUserService *config.UserServiceConfig) Repositories {
	return &repositories{
		db:             db,
		log:            log,
		httpClient:     httpClient,
		cfgUserService: cfgUserService,
	}
}

// FindUserByEmail implements Repositories.
func (r *repositories) FindUserByEmail(ctx context.Context, email string) (entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	var user entity.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err == sql.ErrNoRows {
		return entity.User{}, errors.NotFound("user not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find user by email", err)
		return entity.User{}, errors.InternalServerError("error find user by email")
	}
	return user, nil
}

// FindTicketByID implements Repositories.
func (r *repositories) FindTicketByID(ctx context.Context, ticketID string) (entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`
	var ticket entity.Ticket
	err := r.db.GetContext(ctx, &ticket, query, ticketID)
	if err == sql.ErrNoRows {
		return entity.Ticket{}, errors.NotFound("ticket not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find ticket by id", err)
		return entity.Ticket{}, errors.InternalServerError("error find ticket by id")
	}
	return ticket, nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find booking by id", err)
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// FindBookingsByUserEmail implements Repositories.
func (r *repositories) FindBookingsByUserEmail(ctx context.Context, email string) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_email = $1 ORDER BY created_at DESC`
	bookings := []entity.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, email); err != nil {
		r.log.Error(ctx, "error find bookings by user email", err)
		return nil, errors.InternalServerError("error find bookings by user email")
	}
	return bookings, nil
}

// FindBookingsByVendorEmail implements Repositories.
func (r *repositories) FindBookingsByVendorEmail(ctx context.Context, email string) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE vendor_email = $1 ORDER BY created_at DESC`
	bookings := []entity.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, email); err != nil {
		r.log.Error(ctx, "error find bookings by vendor email", err)
		return nil, errors.InternalServerError("error find bookings by vendor email")
	}
	return bookings, nil
}

// InsertBooking implements Repositories.
func (r *repositories) InsertBooking(ctx context.Context, booking entity.Booking) error {
	query := `
		INSERT INTO bookings (id, ticket_id, user_email, vendor_email, quantity, status, created_at)
		VALUES (:id, :ticket_id, :user_email, :vendor_email, :quantity, :status, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, booking); err != nil {
		r.log.Error(ctx, "error insert booking", err)
		return errors.InternalServerError("error insert booking")
	}
	return nil
}

// AcceptBooking implements Repositories. The decrement only applies while
// the ticket still holds enough seats and the booking is still pending;
// both writes commit together or not at all.
func (r *repositories) AcceptBooking(ctx context.Context, booking entity.Booking) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error(ctx, "error starting transaction", err)
		return errors.InternalServerError("error starting transaction")
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE tickets SET quantity = quantity - $1 WHERE id = $2 AND quantity >= $1`,
		booking.Quantity, booking.TicketID)
	if err != nil {
		r.log.Error(ctx, "error decrement ticket quantity", err)
		return errors.InternalServerError("error decrement ticket quantity")
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.log.Error(ctx, "error read affected rows", err)
		return errors.InternalServerError("error decrement ticket quantity")
	}
	if n == 0 {
		return errors.InsufficientInventory(fmt.Sprintf("not enough tickets left for %d seat(s)", booking.Quantity))
	}

	res, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		entity.BookingStatusAccepted, booking.ID, entity.BookingStatusPending)
	if err != nil {
		r.log.Error(ctx, "error update booking status", err)
		return errors.InternalServerError("error update booking status")
	}
	n, err = res.RowsAffected()
	if err != nil {
		r.log.Error(ctx, "error read affected rows", err)
		return errors.InternalServerError("error update booking status")
	}
	if n == 0 {
		return ErrStatusChanged
	}

	if err := tx.Commit(); err != nil {
		r.log.Error(ctx, "error committing transaction", err)
		return errors.InternalServerError("error committing transaction")
	}
	return nil
}

// RejectBooking implements Repositories. booking.Status is the status the
// caller observed; the update only applies if it still holds. Seats held by
// an accepted booking go back to the ticket in the same transaction.
func (r *repositories) RejectBooking(ctx context.Context, booking entity.Booking) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error(ctx, "error starting transaction", err)
		return errors.InternalServerError("error starting transaction")
	}
	defer tx.Rollback()

	// tickets before bookings, the same lock order as AcceptBooking
	if booking.Status == entity.BookingStatusAccepted {
		_, err = tx.ExecContext(ctx,
			`UPDATE tickets SET quantity = quantity + $1 WHERE id = $2`,
			booking.Quantity, booking.TicketID)
		if err != nil {
			r.log.Error(ctx, "error increment ticket quantity", err)
			return errors.InternalServerError("error increment ticket quantity")
		}
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		entity.BookingStatusRejected, booking.ID, booking.Status)
	if err != nil {
		r.log.Error(ctx, "error update booking status", err)
		return errors.InternalServerError("error update booking status")
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.log.Error(ctx, "error read affected rows", err)
		return errors.InternalServerError("error update booking status")
	}
	if n == 0 {
		return ErrStatusChanged
	}

	if err := tx.Commit(); err != nil {
		r.log.Error(ctx, "error committing transaction", err)
		return errors.InternalServerError("error committing transaction")
	}
	return nil
}

// ValidateToken implements Repositories.
func (r *repositories) ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error) {
	// http call to user service
	endpoint := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s",
		r.cfgUserService.Host, r.cfgUserService.Port, url.QueryEscape(token))
	resp, err := r.httpClient.Get(endpoint)
	if err != nil {
		r.log.Error(ctx, "error call user service", err)
		return response.UserServiceValidate{}, errors.UnauthorizedError("identity service unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.Warn(ctx, "invalid token", resp.StatusCode)
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	var respData response.UserServiceValidate
	if err := json.NewDecoder(resp.Body).Decode(&respData); err != nil {
		r.log.Error(ctx, "error decode user service response", err)
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	if !respData.IsValid || respData.Email == "" {
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	return respData, nil
}
