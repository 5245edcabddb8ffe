package response

import "time"

type UserServiceValidate struct {
	IsValid bool   `json:"is_valid"`
	Email   string `json:"email"`
}

type BookedTicket struct {
	ID          string    `json:"id"`
	TicketID    string    `json:"ticket_id"`
	UserEmail   string    `json:"user_email"`
	VendorEmail string    `json:"vendor_email"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
	TrackingID  string    `json:"tracking_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Decision mirrors the outcome of an accept or reject write.
type Decision struct {
	BookingID     string `json:"booking_id"`
	Status        string `json:"status"`
	ModifiedCount int    `json:"modified_count"`
	// AlreadyApplied is set when the booking was already in the target state.
	AlreadyApplied bool `json:"already_applied"`
}
