package response

import (
	"time"

	"github.com/shopspring/decimal"
)

type CheckoutSession struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

type Reconciliation struct {
	Success          bool   `json:"success"`
	AlreadyProcessed bool   `json:"already_processed,omitempty"`
	TransactionID    string `json:"transaction_id,omitempty"`
	TrackingID       string `json:"tracking_id,omitempty"`
	Message          string `json:"message,omitempty"`
}

type Payment struct {
	ID            string          `json:"id"`
	BookingID     string          `json:"booking_id"`
	TicketID      string          `json:"ticket_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	CustomerEmail string          `json:"customer_email"`
	TransactionID string          `json:"transaction_id"`
	TrackingID    string          `json:"tracking_id"`
	Status        string          `json:"status"`
	PaidAt        time.Time       `json:"paid_at"`
}
