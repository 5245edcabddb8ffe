package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"ticketbari/internal/module/booking/models/entity"
	"ticketbari/internal/module/booking/models/request"
	"ticketbari/internal/module/booking/models/response"
	"ticketbari/internal/module/booking/repositories"
	"ticketbari/internal/pkg/authz"
	"ticketbari/internal/pkg/errors"
	"ticketbari/internal/pkg/log"
	"ticketbari/internal/pkg/messagestream"
	"ticketbari/internal/pkg/metrics"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.elastic.co/apm"
)

// maxRejectAttempts bounds how often a reject re-reads a booking that keeps
// changing under it.
const maxRejectAttempts = 3

const (
	outcomeApplied        = "applied"
	outcomeAlreadyApplied = "already_applied"
	outcomeInsufficient   = "insufficient_inventory"
	outcomeFailed         = "failed"
)

type usecase struct {
	repo      repositories.Repositories
	log       log.Logger
	publisher message.Publisher
}

type Usecase interface {
	// http
	CreateBooking(ctx context.Context, identity authz.Identity, payload *request.CreateBooking) (response.BookedTicket, error)
	AcceptBooking(ctx context.Context, identity authz.Identity, bookingID string) (response.Decision, error)
	RejectBooking(ctx context.Context, identity authz.Identity, bookingID string) (response.Decision, error)
	ShowBookings(ctx context.Context, identity authz.Identity) ([]response.BookedTicket, error)
	ShowVendorBookings(ctx context.Context, identity authz.Identity) ([]response.BookedTicket, error)
	// scheduler
	ExpireBooking(ctx context.Context, payload *request.PaymentExpiration) error
}

func New(repo repositories.Repositories, log log.Logger, publisher message.Publisher) Usecase {
	return &usecase{
		repo:      repo,
		log:       log,
		publisher: publisher,
	}
}

func (u *usecase) CreateBooking(ctx context.Context, identity authz.Identity, payload *request.CreateBooking) (response.BookedTicket, error) {
	span, ctx := apm.StartSpan(ctx, "CreateBooking", "usecase")
	defer span.End()

	if err := authz.Check(identity, authz.RequireRole(authz.RoleUser)); err != nil {
		return response.BookedTicket{}, err
	}

	ticket, err := u.repo.FindTicketByID(ctx, payload.TicketID)
	if err != nil {
		return response.BookedTicket{}, err
	}

	booking := entity.Booking{
		ID:          uuid.NewString(),
		TicketID:    ticket.ID,
		UserEmail:   identity.Email,
		VendorEmail: ticket.VendorEmail,
		Quantity:    payload.Quantity,
		Status:      entity.BookingStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := u.repo.InsertBooking(ctx, booking); err != nil {
		metrics.TrackBookingTransition(entity.BookingStatusPending, outcomeFailed)
		return response.BookedTicket{}, err
	}

	metrics.TrackBookingTransition(entity.BookingStatusPending, outcomeApplied)
	u.log.Info(ctx, "booking created", booking.ID)

	return toBookedTicket(booking), nil
}

func (u *usecase) AcceptBooking(ctx context.Context, identity authz.Identity, bookingID string) (response.Decision, error) {
	span, ctx := apm.StartSpan(ctx, "AcceptBooking", "usecase")
	defer span.End()

	if err := authz.Check(identity, authz.RequireRole(authz.RoleVendor)); err != nil {
		return response.Decision{}, err
	}

	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Decision{}, err
	}

	if err := authz.Check(identity, authz.RequireOwner(booking.VendorEmail)); err != nil {
		return response.Decision{}, err
	}

	switch booking.Status {
	case entity.BookingStatusAccepted:
		metrics.TrackBookingTransition(entity.BookingStatusAccepted, outcomeAlreadyApplied)
		return alreadyApplied(booking), nil
	case entity.BookingStatusRejected, entity.BookingStatusPaid:
		return response.Decision{}, errors.BadRequest(fmt.Sprintf("booking is %s and can no longer be accepted", booking.Status))
	}

	if _, err := u.repo.FindTicketByID(ctx, booking.TicketID); err != nil {
		return response.Decision{}, err
	}

	err = u.repo.AcceptBooking(ctx, booking)
	switch {
	case err == nil:
	case stderrors.Is(err, repositories.ErrStatusChanged), errors.Is(err, errors.KindInsufficientInventory):
		// a concurrent accept of the same booking may have taken the seats
		current, ferr := u.repo.FindBookingByID(ctx, bookingID)
		if ferr != nil {
			return response.Decision{}, ferr
		}
		if current.Status == entity.BookingStatusAccepted {
			metrics.TrackBookingTransition(entity.BookingStatusAccepted, outcomeAlreadyApplied)
			return alreadyApplied(current), nil
		}
		if errors.Is(err, errors.KindInsufficientInventory) {
			metrics.TrackBookingTransition(entity.BookingStatusAccepted, outcomeInsufficient)
			return response.Decision{}, err
		}
		return response.Decision{}, errors.BadRequest(fmt.Sprintf("booking is %s and can no longer be accepted", current.Status))
	default:
		metrics.TrackBookingTransition(entity.BookingStatusAccepted, outcomeFailed)
		return response.Decision{}, err
	}

	metrics.TrackBookingTransition(entity.BookingStatusAccepted, outcomeApplied)
	u.publishStatusChanged(ctx, booking, entity.BookingStatusAccepted)

	return response.Decision{
		BookingID:     booking.ID,
		Status:        entity.BookingStatusAccepted,
		ModifiedCount: 1,
	}, nil
}

func (u *usecase) RejectBooking(ctx context.Context, identity authz.Identity, bookingID string) (response.Decision, error) {
	span, ctx := apm.StartSpan(ctx, "RejectBooking", "usecase")
	defer span.End()

	if err := authz.Check(identity, authz.RequireRole(authz.RoleVendor)); err != nil {
		return response.Decision{}, err
	}

	for attempt := 0; attempt < maxRejectAttempts; attempt++ {
		booking, err := u.repo.FindBookingByID(ctx, bookingID)
		if err != nil {
			return response.Decision{}, err
		}

		if err := authz.Check(identity, authz.RequireOwner(booking.VendorEmail)); err != nil {
			return response.Decision{}, err
		}

		switch booking.Status {
		case entity.BookingStatusRejected:
			metrics.TrackBookingTransition(entity.BookingStatusRejected, outcomeAlreadyApplied)
			return alreadyApplied(booking), nil
		case entity.BookingStatusPaid:
			return response.Decision{}, errors.BadRequest("booking is paid and can no longer be rejected")
		}

		err = u.repo.RejectBooking(ctx, booking)
		if stderrors.Is(err, repositories.ErrStatusChanged) {
			u.log.Warn(ctx, "booking changed during reject, retrying", booking.ID, attempt+1)
			continue
		}
		if err != nil {
			metrics.TrackBookingTransition(entity.BookingStatusRejected, outcomeFailed)
			return response.Decision{}, err
		}

		metrics.TrackBookingTransition(entity.BookingStatusRejected, outcomeApplied)
		u.publishStatusChanged(ctx, booking, entity.BookingStatusRejected)

		return response.Decision{
			BookingID:     booking.ID,
			Status:        entity.BookingStatusRejected,
			ModifiedCount: 1,
		}, nil
	}

	metrics.TrackBookingTransition(entity.BookingStatusRejected, outcomeFailed)
	return response.Decision{}, errors.InternalServerError("booking kept changing, try again")
}

func (u *usecase) ShowBookings(ctx context.Context, identity authz.Identity) ([]response.BookedTicket, error) {
	if err := authz.Check(identity); err != nil {
		return nil, err
	}

	bookings, err := u.repo.FindBookingsByUserEmail(ctx, identity.Email)
	if err != nil {
		return nil, err
	}

	return toBookedTickets(bookings), nil
}

func (u *usecase) ShowVendorBookings(ctx context.Context, identity authz.Identity) ([]response.BookedTicket, error) {
	if err := authz.Check(identity, authz.RequireRole(authz.RoleVendor)); err != nil {
		return nil, err
	}

	bookings, err := u.repo.FindBookingsByVendorEmail(ctx, identity.Email)
	if err != nil {
		return nil, err
	}

	return toBookedTickets(bookings), nil
}

// ExpireBooking releases the seats of an accepted booking whose checkout
// window lapsed. Any other status means the booking moved on and the task
// is dropped.
func (u *usecase) ExpireBooking(ctx context.Context, payload *request.PaymentExpiration) error {
	span, ctx := apm.StartSpan(ctx, "ExpireBooking", "usecase")
	defer span.End()

	booking, err := u.repo.FindBookingByID(ctx, payload.BookingID)
	if errors.Is(err, errors.KindNotFound) {
		u.log.Warn(ctx, "expired booking not found", payload.BookingID)
		return nil
	}
	if err != nil {
		return err
	}

	if booking.Status != entity.BookingStatusAccepted {
		u.log.Info(ctx, "booking not awaiting payment, skip expiry", booking.ID, booking.Status)
		return nil
	}

	err = u.repo.RejectBooking(ctx, booking)
	if stderrors.Is(err, repositories.ErrStatusChanged) {
		u.log.Info(ctx, "booking changed before expiry, skip", booking.ID)
		return nil
	}
	if err != nil {
		return err
	}

	metrics.TrackBookingTransition(entity.BookingStatusRejected, outcomeApplied)
	u.publishStatusChanged(ctx, booking, entity.BookingStatusRejected)

	return nil
}

func (u *usecase) publishStatusChanged(ctx context.Context, booking entity.Booking, to string) {
	if u.publisher == nil {
		return
	}

	event := request.BookingStatusChanged{
		BookingID:   booking.ID,
		TicketID:    booking.TicketID,
		UserEmail:   booking.UserEmail,
		VendorEmail: booking.VendorEmail,
		Quantity:    booking.Quantity,
		From:        booking.Status,
		To:          to,
	}

	if err := messagestream.Publish(ctx, u.publisher, messagestream.TopicBookingStatusChanged, event); err != nil {
		u.log.Error(ctx, "error publish booking status changed", err)
	}
}

func alreadyApplied(booking entity.Booking) response.Decision {
	return response.Decision{
		BookingID:      booking.ID,
		Status:         booking.Status,
		AlreadyApplied: true,
	}
}

func toBookedTicket(booking entity.Booking) response.BookedTicket {
	return response.BookedTicket{
		ID:          booking.ID,
		TicketID:    booking.TicketID,
		UserEmail:   booking.UserEmail,
		VendorEmail: booking.VendorEmail,
		Quantity:    booking.Quantity,
		Status:      booking.Status,
		TrackingID:  booking.TrackingID.String,
		CreatedAt:   booking.CreatedAt,
	}
}

func toBookedTickets(bookings []entity.Booking) []response.BookedTicket {
	resp := make([]response.BookedTicket, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, toBookedTicket(b))
	}
	return resp
}
