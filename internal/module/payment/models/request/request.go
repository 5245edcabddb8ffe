package request

type CreateCheckoutSession struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
}

type ReconcilePayment struct {
	SessionID string `json:"session_id" validate:"required"`
}

// PaymentConfirmed is the payload consumed from the payment_confirmed topic.
type PaymentConfirmed struct {
	SessionID string `json:"session_id" validate:"required"`
}

type PaymentSucceeded struct {
	BookingID     string `json:"booking_id"`
	TicketID      string `json:"ticket_id"`
	TransactionID string `json:"transaction_id"`
	TrackingID    string `json:"tracking_id"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	CustomerEmail string `json:"customer_email"`
}
