package payments

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"

	"neurobridge/pkg/utils"
)

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
}

type stripeProvider struct {
	api           *client.API
	webhookSecret string
}

// NewStripeProvider builds a provider around an explicitly constructed Stripe
// client. The API key lives on this client only, never in package state.
func NewStripeProvider(cfg StripeConfig) (Provider, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("missing stripe secret key")
	}
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return &stripeProvider{
		api:           api,
		webhookSecret: cfg.WebhookSecret,
	}, nil
}

func (s *stripeProvider) GetPrice(ctx context.Context, priceID string) (*PriceInfo, error) {
	params := &stripe.PriceParams{}
	params.Context = ctx

	price, err := s.api.Prices.Get(priceID, params)
	if err != nil {
		return nil, wrapStripeError(err)
	}

	return &PriceInfo{
		ID:         price.ID,
		UnitAmount: price.UnitAmount,
		Currency:   string(price.Currency),
	}, nil
}

// CreatePrice registers a product and one-off price for a piece of content.
// Stripe creates the product inline when ProductData is supplied.
func (s *stripeProvider) CreatePrice(ctx context.Context, productName string, unitAmount int64, currency string) (*CreatedPrice, error) {
	params := &stripe.PriceParams{
		UnitAmount: stripe.Int64(unitAmount),
		Currency:   stripe.String(currency),
		ProductData: &stripe.PriceProductDataParams{
			Name: stripe.String(productName),
		},
	}
	params.Context = ctx

	price, err := s.api.Prices.New(params)
	if err != nil {
		return nil, wrapStripeError(err)
	}

	created := &CreatedPrice{PriceID: price.ID}
	if price.Product != nil {
		created.ProductID = price.Product.ID
	}
	return created, nil
}

func (s *stripeProvider) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(p.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	if p.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(p.CustomerEmail)
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, wrapStripeError(err)
	}

	return newCheckoutSession(sess), nil
}

func (s *stripeProvider) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("payment_intent")

	sess, err := s.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, wrapStripeError(err)
	}

	return newCheckoutSession(sess), nil
}

func (s *stripeProvider) CreateCustomer(ctx context.Context, email string, metadata map[string]string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	customer, err := s.api.Customers.New(params)
	if err != nil {
		return "", wrapStripeError(err)
	}
	return customer.ID, nil
}

// ConstructEvent verifies the Stripe-Signature header against the raw body
// and reduces the event to what the reconciler needs. Unrecognized event
// kinds come back with empty handles; the service treats them as no-ops.
func (s *stripeProvider) ConstructEvent(payload []byte, signatureHeader string) (*Event, error) {
	stripeEvent, err := webhook.ConstructEvent(payload, signatureHeader, s.webhookSecret)
	if err != nil {
		return nil, utils.ErrInvalidWebhook
	}

	event := &Event{Type: string(stripeEvent.Type)}

	switch event.Type {
	case EventCheckoutCompleted, EventCheckoutExpired:
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(stripeEvent.Data.Raw, &sess); err != nil {
			return nil, utils.ErrInvalidWebhook
		}
		event.SessionID = sess.ID
		if sess.PaymentIntent != nil {
			event.PaymentIntentID = sess.PaymentIntent.ID
		}
	case EventPaymentSucceeded, EventPaymentFailed:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(stripeEvent.Data.Raw, &intent); err != nil {
			return nil, utils.ErrInvalidWebhook
		}
		event.PaymentIntentID = intent.ID
	}

	return event, nil
}

func wrapStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return utils.NewPaymentProviderError(stripeErr.Msg, err)
	}
	return utils.NewPaymentProviderError(err.Error(), err)
}

func newCheckoutSession(sess *stripe.CheckoutSession) *CheckoutSession {
	out := &CheckoutSession{
		ID:            sess.ID,
		URL:           sess.URL,
		PaymentStatus: string(sess.PaymentStatus),
	}
	if sess.PaymentIntent != nil {
		out.PaymentIntentID = sess.PaymentIntent.ID
	}
	return out
}
