package request_models

type CreateCheckoutRequest struct {
	PostID     string `json:"post_id" binding:"required"`
	SuccessURL string `json:"success_url"`
	CancelURL  string `json:"cancel_url"`
}

type VerifyPaymentRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

type CreateCustomerRequest struct {
	UserID int64  `json:"user_id" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
}
