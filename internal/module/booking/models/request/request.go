package request

type CreateBooking struct {
	TicketID string `json:"ticket_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type BookingDecision struct {
	BookingID string `params:"id" validate:"required,uuid"`
}

type PaymentExpiration struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
}

type BookingStatusChanged struct {
	BookingID   string `json:"booking_id"`
	TicketID    string `json:"ticket_id"`
	UserEmail   string `json:"user_email"`
	VendorEmail string `json:"vendor_email"`
	Quantity    int    `json:"quantity"`
	From        string `json:"from"`
	To          string `json:"to"`
}
