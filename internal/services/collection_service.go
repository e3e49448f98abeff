package services

import (
	"context"

	"neurobridge/internal/models/db_models"
	"neurobridge/internal/models/request_models"
	"neurobridge/internal/models/response_models"
	"neurobridge/internal/repositories"
	"neurobridge/pkg/utils"
)

type CollectionServiceInterface interface {
	CreateCollection(ctx context.Context, userID int64, req request_models.CreateCollectionRequest) (*response_models.CollectionResponse, error)
	GetCollection(ctx context.Context, id int64) (*response_models.CollectionResponse, error)
	ListCollections(ctx context.Context, offset, limit int) ([]response_models.CollectionResponse, error)
	ListUserCollections(ctx context.Context, userID int64) ([]response_models.CollectionResponse, error)
}

type CollectionService struct {
	collectionRepo repositories.CollectionRepository
	userRepo       repositories.UserRepository
}

func NewCollectionService(collectionRepo repositories.CollectionRepository, userRepo repositories.UserRepository) CollectionServiceInterface {
	return &CollectionService{collectionRepo: collectionRepo, userRepo: userRepo}
}

func (c *CollectionService) CreateCollection(ctx context.Context, userID int64, req request_models.CreateCollectionRequest) (*response_models.CollectionResponse, error) {
	user, err := c.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	collection := &db_models.Collection{
		UserID: userID,
		Name:   req.Name,
	}
	if err := c.collectionRepo.Create(ctx, collection); err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := collectionResponse(collection)
	return &resp, nil
}

func (c *CollectionService) GetCollection(ctx context.Context, id int64) (*response_models.CollectionResponse, error) {
	collection, err := c.collectionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if collection == nil {
		return nil, utils.ErrCollectionNotFound
	}
	resp := collectionResponse(collection)
	return &resp, nil
}

func (c *CollectionService) ListCollections(ctx context.Context, offset, limit int) ([]response_models.CollectionResponse, error) {
	collections, err := c.collectionRepo.ListAll(ctx, offset, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return collectionResponses(collections), nil
}

func (c *CollectionService) ListUserCollections(ctx context.Context, userID int64) ([]response_models.CollectionResponse, error) {
	collections, err := c.collectionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return collectionResponses(collections), nil
}

func collectionResponse(collection *db_models.Collection) response_models.CollectionResponse {
	return response_models.CollectionResponse{
		CollectionID: collection.CollectionID,
		UserID:       collection.UserID,
		Name:         collection.Name,
		CreatedAt:    collection.CreatedAt,
	}
}

func collectionResponses(collections []db_models.Collection) []response_models.CollectionResponse {
	out := make([]response_models.CollectionResponse, 0, len(collections))
	for i := range collections {
		out = append(out, collectionResponse(&collections[i]))
	}
	return out
}
