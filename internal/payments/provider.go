package payments

import "context"

const (
	PaymentStatusPaid   = "paid"
	PaymentStatusUnpaid = "unpaid"
)

// Event kinds delivered on the webhook. The names are Stripe's wire contract
// and must not be changed.
const (
	EventCheckoutCompleted = "checkout.session.completed"
	EventCheckoutExpired   = "checkout.session.expired"
	EventPaymentSucceeded  = "payment_intent.succeeded"
	EventPaymentFailed     = "payment_intent.payment_failed"
)

type PriceInfo struct {
	ID         string
	UnitAmount int64
	Currency   string
}

// CreatedPrice holds the identifiers Stripe assigns when a price is
// registered for a piece of content.
type CreatedPrice struct {
	PriceID   string
	ProductID string
}

type CheckoutParams struct {
	PriceID       string
	SuccessURL    string
	CancelURL     string
	CustomerEmail string
	Metadata      map[string]string
}

type CheckoutSession struct {
	ID              string
	URL             string
	PaymentIntentID string
	PaymentStatus   string
}

// Event is a verified webhook notification reduced to the fields the
// reconciler needs.
type Event struct {
	Type            string
	SessionID       string
	PaymentIntentID string
}

// Provider is the boundary to the external payment processor. Services depend
// on this interface, never on the SDK directly.
type Provider interface {
	GetPrice(ctx context.Context, priceID string) (*PriceInfo, error)
	CreatePrice(ctx context.Context, productName string, unitAmount int64, currency string) (*CreatedPrice, error)
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
	CreateCustomer(ctx context.Context, email string, metadata map[string]string) (string, error)
	ConstructEvent(payload []byte, signatureHeader string) (*Event, error)
}
