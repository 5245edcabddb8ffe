package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ticketbari/internal/pkg/errors"

	circuit "github.com/rubyist/circuitbreaker"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeProvider implements Provider on Stripe Checkout. Every call goes
// through a consecutive-failure breaker so an outage fails fast.
type StripeProvider struct {
	api     *client.API
	breaker *circuit.Breaker
	timeout time.Duration
}

func NewStripeProvider(secretKey string, backends *stripe.Backends, breaker *circuit.Breaker, timeout time.Duration) *StripeProvider {
	return &StripeProvider{
		api:     client.New(secretKey, backends),
		breaker: breaker,
		timeout: timeout,
	}
}

func (p *StripeProvider) CreateSession(ctx context.Context, in CreateSessionParams) (Session, error) {
	params := &stripe.CheckoutSessionParams{
		CustomerEmail: stripe.String(in.CustomerEmail),
		Mode:          stripe.String(in.Mode),
		SuccessURL:    stripe.String(in.SuccessURL),
		CancelURL:     stripe.String(in.CancelURL),
	}
	if !in.ExpiresAt.IsZero() {
		params.ExpiresAt = stripe.Int64(in.ExpiresAt.Unix())
	}
	for _, item := range in.LineItems {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(strings.ToLower(in.Currency)),
				UnitAmount: stripe.Int64(item.UnitAmount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	var s *stripe.CheckoutSession
	err := p.breaker.Call(func() error {
		var err error
		s, err = p.api.CheckoutSessions.New(params)
		return err
	}, p.timeout)
	if err != nil {
		return Session{}, providerError("create checkout session", err)
	}

	return toSession(s), nil
}

func (p *StripeProvider) GetSession(ctx context.Context, sessionID string) (Session, error) {
	if sessionID == "" {
		return Session{}, errors.PaymentProviderError("checkout session id is empty")
	}

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	var s *stripe.CheckoutSession
	err := p.breaker.Call(func() error {
		var err error
		s, err = p.api.CheckoutSessions.Get(sessionID, params)
		return err
	}, p.timeout)
	if err != nil {
		return Session{}, providerError("retrieve checkout session", err)
	}

	return toSession(s), nil
}

func toSession(s *stripe.CheckoutSession) Session {
	out := Session{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		CustomerEmail: s.CustomerEmail,
		Metadata:      s.Metadata,
	}
	if out.CustomerEmail == "" && s.CustomerDetails != nil {
		out.CustomerEmail = s.CustomerDetails.Email
	}
	if s.PaymentIntent != nil {
		out.TransactionID = s.PaymentIntent.ID
	}
	return out
}

func providerError(op string, err error) error {
	if err == circuit.ErrBreakerOpen {
		return errors.PaymentProviderError(fmt.Sprintf("%s: payment provider unavailable", op))
	}
	if serr, ok := err.(*stripe.Error); ok {
		return errors.PaymentProviderError(fmt.Sprintf("%s: %s (%d)", op, serr.Msg, serr.HTTPStatusCode))
	}
	return errors.PaymentProviderError(fmt.Sprintf("%s: %v", op, err))
}
