package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID            string          `db:"id"`
	BookingID     string          `db:"booking_id"`
	TicketID      string          `db:"ticket_id"`
	Amount        decimal.Decimal `db:"amount"`
	Currency      string          `db:"currency"`
	CustomerEmail string          `db:"customer_email"`
	TransactionID string          `db:"transaction_id"`
	TrackingID    string          `db:"tracking_id"`
	Status        string          `db:"status"`
	PaidAt        time.Time       `db:"paid_at"`
	CreatedAt     time.Time       `db:"created_at"`
}

// CheckoutSession is the provider session opened for a booking. A booking
// has at most one; it bounds the booking's payment window.
type CheckoutSession struct {
	BookingID string    `db:"booking_id"`
	SessionID string    `db:"session_id"`
	URL       string    `db:"url"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
