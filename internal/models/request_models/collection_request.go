package request_models

type CreateCollectionRequest struct {
	Name string `json:"name" binding:"required"`
}
