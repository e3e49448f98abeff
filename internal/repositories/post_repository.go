package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"neurobridge/internal/models/db_models"
)

type PostRepository interface {
	Create(ctx context.Context, post *db_models.Post) error
	FindByID(ctx context.Context, id string) (*db_models.Post, error)
	List(ctx context.Context, offset, limit int) ([]db_models.Post, error)
	ListByUser(ctx context.Context, userID int64, offset, limit int) ([]db_models.Post, error)
	UpdateStripeHandles(ctx context.Context, id string, priceID, productID string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (p *postRepository) Create(ctx context.Context, post *db_models.Post) error {
	return p.db.WithContext(ctx).Create(post).Error
}

func (p *postRepository) FindByID(ctx context.Context, id string) (*db_models.Post, error) {
	var post db_models.Post
	err := p.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (p *postRepository) List(ctx context.Context, offset, limit int) ([]db_models.Post, error) {
	var posts []db_models.Post
	err := p.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (p *postRepository) ListByUser(ctx context.Context, userID int64, offset, limit int) ([]db_models.Post, error) {
	var posts []db_models.Post
	err := p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Offset(offset).Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (p *postRepository) UpdateStripeHandles(ctx context.Context, id string, priceID, productID string) error {
	return p.db.WithContext(ctx).Model(&db_models.Post{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stripe_price_id":   priceID,
			"stripe_product_id": productID,
		}).Error
}
