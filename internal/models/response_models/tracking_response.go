package response_models

type TrackingResponse struct {
	UserID           int64 `json:"user_id"`
	LoginCount       int   `json:"login_count"`
	ViewedPostsCount int   `json:"viewed_posts_count"`
	BoughtPostsCount int   `json:"bought_posts_count"`
	ProfileViewCount int   `json:"profile_view_count"`
	UpdatedAt        int64 `json:"updated_at"`
}
