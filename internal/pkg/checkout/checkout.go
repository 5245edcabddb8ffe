// Package checkout talks to the hosted checkout provider.
package checkout

import (
	"context"
	"time"
)

const (
	StatusPaid   = "paid"
	ModePayment  = "payment"
	MetaBooking  = "booking_id"
	MetaTicket   = "ticket_id"
	MetaTitle    = "title"
	SessionIDKey = "{CHECKOUT_SESSION_ID}"
)

type LineItem struct {
	Name       string
	UnitAmount int64 // minor units
	Quantity   int64
}

type CreateSessionParams struct {
	LineItems     []LineItem
	Currency      string
	CustomerEmail string
	Mode          string
	Metadata      map[string]string
	SuccessURL    string
	CancelURL     string
	ExpiresAt     time.Time
}

// Session is the provider's authoritative view of a checkout.
type Session struct {
	ID            string
	URL           string
	PaymentStatus string
	TransactionID string
	AmountTotal   int64 // minor units
	Currency      string
	CustomerEmail string
	Metadata      map[string]string
}

func (s Session) Settled() bool {
	return s.PaymentStatus == StatusPaid
}

type Provider interface {
	CreateSession(ctx context.Context, params CreateSessionParams) (Session, error)
	GetSession(ctx context.Context, sessionID string) (Session, error)
}
