package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"neurobridge/internal/models/db_models"
)

type CollectionRepository interface {
	Create(ctx context.Context, collection *db_models.Collection) error
	FindByID(ctx context.Context, id int64) (*db_models.Collection, error)
	ListAll(ctx context.Context, offset, limit int) ([]db_models.Collection, error)
	ListByUser(ctx context.Context, userID int64) ([]db_models.Collection, error)
}

type collectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (c *collectionRepository) Create(ctx context.Context, collection *db_models.Collection) error {
	return c.db.WithContext(ctx).Create(collection).Error
}

func (c *collectionRepository) FindByID(ctx context.Context, id int64) (*db_models.Collection, error) {
	var collection db_models.Collection
	err := c.db.WithContext(ctx).First(&collection, "collection_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &collection, nil
}

func (c *collectionRepository) ListAll(ctx context.Context, offset, limit int) ([]db_models.Collection, error) {
	var collections []db_models.Collection
	err := c.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Find(&collections).Error
	if err != nil {
		return nil, err
	}
	return collections, nil
}

func (c *collectionRepository) ListByUser(ctx context.Context, userID int64) ([]db_models.Collection, error) {
	var collections []db_models.Collection
	err := c.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&collections).Error
	if err != nil {
		return nil, err
	}
	return collections, nil
}
