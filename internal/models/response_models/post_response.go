package response_models

type PostResponse struct {
	ID              string   `json:"id"`
	ImageURL        string   `json:"image_url"`
	Title           string   `json:"title"`
	UserID          *int64   `json:"user_id,omitempty"`
	UserName        string   `json:"user_name,omitempty"`
	Date            string   `json:"date,omitempty"`
	ReadTime        string   `json:"read_time,omitempty"`
	Tags            []string `json:"tags"`
	Price           *float64 `json:"price,omitempty"`
	HTMLContent     string   `json:"html_content"`
	AllowComments   bool     `json:"allow_comments"`
	Tier            string   `json:"tier"`
	Collection      string   `json:"collection,omitempty"`
	Attachments     []string `json:"attachments,omitempty"`
	DatePublished   *int64   `json:"date_published,omitempty"`
	ScheduledTime   int64    `json:"scheduled_time"`
	StripePriceID   *string  `json:"stripe_price_id,omitempty"`
	StripeProductID *string  `json:"stripe_product_id,omitempty"`
	UpdatedAt       int64    `json:"updated_at"`
}
