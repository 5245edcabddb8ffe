package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ticketbari/config"
	bookingEntity "ticketbari/internal/module/booking/models/entity"
	bookingRequest "ticketbari/internal/module/booking/models/request"
	"ticketbari/internal/module/payment/models/entity"
	"ticketbari/internal/module/payment/models/request"
	"ticketbari/internal/module/payment/models/response"
	"ticketbari/internal/module/payment/repositories"
	"ticketbari/internal/pkg/authz"
	"ticketbari/internal/pkg/checkout"
	"ticketbari/internal/pkg/errors"
	"ticketbari/internal/pkg/helpers"
	"ticketbari/internal/pkg/log"
	"ticketbari/internal/pkg/messagestream"
	"ticketbari/internal/pkg/metrics"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.elastic.co/apm"
)

type usecase struct {
	repo      repositories.Repositories
	provider  checkout.Provider
	log       log.Logger
	publisher message.Publisher
	cfg       *config.PaymentConfig
	now       func() time.Time
}

type Usecase interface {
	// http
	CreateCheckoutSession(ctx context.Context, identity authz.Identity, payload *request.CreateCheckoutSession) (response.CheckoutSession, error)
	ReconcilePayment(ctx context.Context, payload *request.ReconcilePayment) (response.Reconciliation, error)
	ListPayments(ctx context.Context, identity authz.Identity) ([]response.Payment, error)
}

func New(repo repositories.Repositories, provider checkout.Provider, log log.Logger, publisher message.Publisher, cfg *config.PaymentConfig) Usecase {
	return &usecase{
		repo:      repo,
		provider:  provider,
		log:       log,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (u *usecase) CreateCheckoutSession(ctx context.Context, identity authz.Identity, payload *request.CreateCheckoutSession) (response.CheckoutSession, error) {
	span, ctx := apm.StartSpan(ctx, "CreateCheckoutSession", "usecase")
	defer span.End()

	if err := authz.Check(identity); err != nil {
		return response.CheckoutSession{}, err
	}

	booking, err := u.repo.FindBookingByID(ctx, payload.BookingID)
	if err != nil {
		return response.CheckoutSession{}, err
	}

	if err := authz.Check(identity, authz.RequireOwner(booking.UserEmail)); err != nil {
		return response.CheckoutSession{}, err
	}

	if booking.Status != bookingEntity.BookingStatusAccepted {
		return response.CheckoutSession{}, errors.BadRequest(fmt.Sprintf("booking is %s, only accepted bookings can be paid", booking.Status))
	}

	ticket, err := u.repo.FindTicketByID(ctx, booking.TicketID)
	if err != nil {
		return response.CheckoutSession{}, err
	}

	unlock, err := u.repo.LockCheckout(ctx, booking.ID)
	if err != nil {
		return response.CheckoutSession{}, err
	}
	defer unlock()

	now := u.now()

	existing, err := u.repo.FindCheckoutSession(ctx, booking.ID)
	switch {
	case err == nil && now.Before(existing.ExpiresAt):
		metrics.TrackCheckoutSession("reused")
		return response.CheckoutSession{
			SessionID: existing.SessionID,
			URL:       existing.URL,
		}, nil
	case err == nil:
		// the expiry task for this window is already queued and will release the booking
		return response.CheckoutSession{}, errors.BadRequest("the payment window for this booking has closed")
	case !errors.Is(err, errors.KindNotFound):
		return response.CheckoutSession{}, err
	}

	expiresAt := now.Add(u.cfg.SessionTTL)
	session, err := u.provider.CreateSession(ctx, checkout.CreateSessionParams{
		LineItems: []checkout.LineItem{{
			Name:       ticket.Title,
			UnitAmount: checkout.ToMinorUnits(ticket.Price, u.cfg.Currency),
			Quantity:   int64(booking.Quantity),
		}},
		Currency:      u.cfg.Currency,
		CustomerEmail: identity.Email,
		Mode:          checkout.ModePayment,
		Metadata: map[string]string{
			checkout.MetaBooking: booking.ID,
			checkout.MetaTicket:  ticket.ID,
			checkout.MetaTitle:   ticket.Title,
		},
		SuccessURL: u.cfg.SuccessURL,
		CancelURL:  u.cfg.CancelURL,
		ExpiresAt:  expiresAt,
	})
	if err != nil {
		metrics.TrackCheckoutSession("failed")
		return response.CheckoutSession{}, err
	}

	// an unrecorded session is never handed out, so nobody can pay it
	err = u.repo.InsertCheckoutSession(ctx, entity.CheckoutSession{
		BookingID: booking.ID,
		SessionID: session.ID,
		URL:       session.URL,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	})
	if err != nil {
		metrics.TrackCheckoutSession("failed")
		return response.CheckoutSession{}, err
	}

	// a late completion still settles before the booking is released
	err = u.repo.SetTaskScheduler(ctx, expiresAt.Add(u.cfg.ExpiryGrace), bookingRequest.PaymentExpiration{BookingID: booking.ID})
	if err != nil {
		// the session is live; the booking just will not auto-expire
		u.log.Error(ctx, "error schedule payment expiry", booking.ID, err)
	}

	metrics.TrackCheckoutSession("created")

	return response.CheckoutSession{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

// ReconcilePayment applies a settled checkout session at most once.
func (u *usecase) ReconcilePayment(ctx context.Context, payload *request.ReconcilePayment) (response.Reconciliation, error) {
	span, ctx := apm.StartSpan(ctx, "ReconcilePayment", "usecase")
	defer span.End()

	session, err := u.provider.GetSession(ctx, payload.SessionID)
	if err != nil {
		metrics.TrackReconciliation("provider_error")
		return response.Reconciliation{}, err
	}

	if !session.Settled() {
		metrics.TrackReconciliation("not_paid")
		return response.Reconciliation{
			Success: false,
			Message: fmt.Sprintf("payment status is %s", session.PaymentStatus),
		}, nil
	}

	bookingID := session.Metadata[checkout.MetaBooking]
	if bookingID == "" {
		metrics.TrackReconciliation("provider_error")
		return response.Reconciliation{}, errors.PaymentProviderError("checkout session carries no booking reference")
	}

	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Reconciliation{}, err
	}

	now := u.now().UTC()
	trackingID, err := helpers.GenerateTrackingID(now)
	if err != nil {
		u.log.Error(ctx, "error generate tracking id", err)
		return response.Reconciliation{}, errors.InternalServerError("error generate tracking id")
	}

	payment := entity.Payment{
		ID:            uuid.NewString(),
		BookingID:     booking.ID,
		TicketID:      firstNonEmpty(session.Metadata[checkout.MetaTicket], booking.TicketID),
		Amount:        checkout.FromMinorUnits(session.AmountTotal, session.Currency),
		Currency:      strings.ToLower(session.Currency),
		CustomerEmail: firstNonEmpty(session.CustomerEmail, booking.UserEmail),
		TransactionID: firstNonEmpty(session.TransactionID, session.ID),
		TrackingID:    trackingID,
		Status:        session.PaymentStatus,
		PaidAt:        now,
		CreatedAt:     now,
	}

	applied, err := u.repo.SettleBooking(ctx, payment)
	if err != nil {
		metrics.TrackReconciliation("failed")
		return response.Reconciliation{}, err
	}

	if !applied {
		return u.alreadyProcessed(ctx, payment)
	}

	metrics.TrackReconciliation("applied")
	u.publishPaymentSucceeded(ctx, payment)

	return response.Reconciliation{
		Success:       true,
		TransactionID: payment.TransactionID,
		TrackingID:    payment.TrackingID,
		Message:       "payment recorded",
	}, nil
}

// alreadyProcessed answers a call that lost the settle gate. The winning
// update and its payment row commit together, so a missing row for this
// transaction means this charge never settled the booking.
func (u *usecase) alreadyProcessed(ctx context.Context, payment entity.Payment) (response.Reconciliation, error) {
	existing, err := u.repo.FindPaymentByTransactionID(ctx, payment.TransactionID)
	if err == nil {
		metrics.TrackReconciliation("already_processed")
		return response.Reconciliation{
			Success:          true,
			AlreadyProcessed: true,
			TransactionID:    existing.TransactionID,
			TrackingID:       existing.TrackingID,
			Message:          "payment already processed",
		}, nil
	}
	if !errors.Is(err, errors.KindNotFound) {
		return response.Reconciliation{}, err
	}

	booking, err := u.repo.FindBookingByID(ctx, payment.BookingID)
	if err != nil {
		return response.Reconciliation{}, err
	}

	switch booking.Status {
	case bookingEntity.BookingStatusPaid:
		u.log.Error(ctx, "booking already paid by another transaction", booking.ID, payment.TransactionID)
		metrics.TrackReconciliation("duplicate_charge")
		return response.Reconciliation{
			Success:       false,
			TransactionID: payment.TransactionID,
			Message:       "booking was already paid by another transaction",
		}, nil
	case bookingEntity.BookingStatusRejected:
		metrics.TrackReconciliation("rejected_booking")
		return response.Reconciliation{}, errors.BadRequest("booking was released before the payment settled")
	default:
		metrics.TrackReconciliation("not_accepted")
		return response.Reconciliation{}, errors.BadRequest(fmt.Sprintf("booking is %s, only accepted bookings can be paid", booking.Status))
	}
}

func (u *usecase) ListPayments(ctx context.Context, identity authz.Identity) ([]response.Payment, error) {
	if err := authz.Check(identity); err != nil {
		return nil, err
	}

	var (
		payments []entity.Payment
		err      error
	)
	if identity.Role == authz.RoleAdmin {
		payments, err = u.repo.FindPayments(ctx)
	} else {
		payments, err = u.repo.FindPaymentsByEmail(ctx, identity.Email)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]response.Payment, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, response.Payment{
			ID:            p.ID,
			BookingID:     p.BookingID,
			TicketID:      p.TicketID,
			Amount:        p.Amount,
			Currency:      p.Currency,
			CustomerEmail: p.CustomerEmail,
			TransactionID: p.TransactionID,
			TrackingID:    p.TrackingID,
			Status:        p.Status,
			PaidAt:        p.PaidAt,
		})
	}
	return resp, nil
}

func (u *usecase) publishPaymentSucceeded(ctx context.Context, payment entity.Payment) {
	if u.publisher == nil {
		return
	}

	event := request.PaymentSucceeded{
		BookingID:     payment.BookingID,
		TicketID:      payment.TicketID,
		TransactionID: payment.TransactionID,
		TrackingID:    payment.TrackingID,
		Amount:        checkout.FormatAmount(payment.Amount, payment.Currency),
		Currency:      payment.Currency,
		CustomerEmail: payment.CustomerEmail,
	}

	if err := messagestream.Publish(ctx, u.publisher, messagestream.TopicPaymentSucceeded, event); err != nil {
		u.log.Error(ctx, "error publish payment succeeded", err)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
