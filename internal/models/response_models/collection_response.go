package response_models

type CollectionResponse struct {
	CollectionID int64  `json:"collection_id"`
	UserID       int64  `json:"user_id"`
	Name         string `json:"name"`
	CreatedAt    int64  `json:"created_at"`
}
