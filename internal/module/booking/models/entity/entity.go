package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

const (
	BookingStatusPending  = "pending"
	BookingStatusAccepted = "accepted"
	BookingStatusRejected = "rejected"
	BookingStatusPaid     = "paid"
)

type User struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	PhotoURL  string    `db:"photo_url"`
	Role      string    `db:"role"`
	IsFraud   bool      `db:"is_fraud"`
	CreatedAt time.Time `db:"created_at"`
}

type Ticket struct {
	ID          string          `db:"id"`
	VendorEmail string          `db:"vendor_email"`
	Title       string          `db:"title"`
	Price       decimal.Decimal `db:"price"`
	Quantity    int             `db:"quantity"`
	Status      string          `db:"status"`
	Advertised  bool            `db:"advertised"`
	DepartureAt time.Time       `db:"departure_at"`
	CreatedAt   time.Time       `db:"created_at"`
}

type Booking struct {
	ID          string         `db:"id"`
	TicketID    string         `db:"ticket_id"`
	UserEmail   string         `db:"user_email"`
	VendorEmail string         `db:"vendor_email"`
	Quantity    int            `db:"quantity"`
	Status      string         `db:"status"`
	TrackingID  sql.NullString `db:"tracking_id"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   sql.NullTime   `db:"updated_at"`
}
