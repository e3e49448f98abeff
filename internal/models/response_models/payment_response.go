package response_models

type CheckoutResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
}

type PurchaseResponse struct {
	ID                    int64   `json:"id"`
	UserID                int64   `json:"user_id"`
	PostID                string  `json:"post_id"`
	StripeSessionID       *string `json:"stripe_session_id,omitempty"`
	StripePaymentIntentID *string `json:"stripe_payment_intent_id,omitempty"`
	Amount                int64   `json:"amount"`
	Currency              string  `json:"currency"`
	Status                string  `json:"status"`
	CreatedAt             int64   `json:"created_at"`
	UpdatedAt             int64   `json:"updated_at"`
}

type StripeCustomerResponse struct {
	UserID           int64  `json:"user_id"`
	StripeCustomerID string `json:"stripe_customer_id"`
	Email            string `json:"email"`
}

type AccessResponse struct {
	PostID  string `json:"post_id"`
	UserID  int64  `json:"user_id"`
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason"`
}
