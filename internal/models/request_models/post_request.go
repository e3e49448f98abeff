package request_models

type CreatePostRequest struct {
	ImageURL      string   `json:"image_url" binding:"required"`
	Title         string   `json:"title" binding:"required"`
	ReadTime      string   `json:"read_time"`
	Tags          []string `json:"tags"`
	Price         *float64 `json:"price"`
	HTMLContent   string   `json:"html_content" binding:"required"`
	AllowComments bool     `json:"allow_comments"`
	Tier          string   `json:"tier" binding:"required,oneof=free premium exclusive"`
	Collection    string   `json:"collection"`
	Attachments   []string `json:"attachments"`
	DatePublished *int64   `json:"date_published"`
	ScheduledTime *int64   `json:"scheduled_time"`
}
