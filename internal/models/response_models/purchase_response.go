package response_models

type UserPostPurchaseResponse struct {
	UserID      int64  `json:"user_id"`
	UserEmail   string `json:"user_email"`
	UserName    string `json:"user_name"`
	PostID      string `json:"post_id"`
	PostTitle   string `json:"post_title"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	PurchasedAt int64  `json:"purchased_at"`
}

type PostPurchaseStatsResponse struct {
	PostID         string `json:"post_id"`
	PostTitle      string `json:"post_title"`
	TotalPurchases int64  `json:"total_purchases"`
	TotalRevenue   int64  `json:"total_revenue"`
	Currency       string `json:"currency"`
}

type PurchaseCheckResponse struct {
	UserID       int64                 `json:"user_id"`
	PostID       string                `json:"post_id"`
	HasPurchased bool                  `json:"has_purchased"`
	Details      *PurchaseCheckDetails `json:"purchase_details,omitempty"`
}

type PurchaseCheckDetails struct {
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	PurchasedAt int64  `json:"purchased_at"`
}
