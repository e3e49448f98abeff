package repositories

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"neurobridge/internal/models/db_models"
	"neurobridge/pkg/utils"
)

type PostPurchaseRepository interface {
	// Insert writes the fulfillment row. A unique violation on
	// (user_id, post_id) comes back as utils.ErrAlreadyPurchased; the
	// constraint, not the caller, is the arbiter under concurrent delivery.
	Insert(ctx context.Context, record *db_models.PostPurchase) error
	FindByUserAndPost(ctx context.Context, userID int64, postID string) (*db_models.PostPurchase, error)
	ListByUser(ctx context.Context, userID int64, offset, limit int) ([]db_models.PostPurchase, error)
	ListByPost(ctx context.Context, postID string) ([]db_models.PostPurchase, error)
	ListAll(ctx context.Context, offset, limit int) ([]db_models.PostPurchase, error)
	StatsByPost(ctx context.Context, postID string) (*db_models.PostPurchaseStats, error)
}

type postPurchaseRepository struct {
	db *gorm.DB
}

func NewPostPurchaseRepository(db *gorm.DB) PostPurchaseRepository {
	return &postPurchaseRepository{db: db}
}

func (r *postPurchaseRepository) Insert(ctx context.Context, record *db_models.PostPurchase) error {
	err := r.db.WithContext(ctx).Create(record).Error
	if err != nil && isUniqueViolation(err) {
		return utils.ErrAlreadyPurchased
	}
	return err
}

func (r *postPurchaseRepository) FindByUserAndPost(ctx context.Context, userID int64, postID string) (*db_models.PostPurchase, error) {
	var record db_models.PostPurchase
	err := r.db.WithContext(ctx).
		First(&record, "user_id = ? AND post_id = ?", userID, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *postPurchaseRepository) ListByUser(ctx context.Context, userID int64, offset, limit int) ([]db_models.PostPurchase, error) {
	var records []db_models.PostPurchase
	err := r.db.WithContext(ctx).
		Preload("User").Preload("Post").
		Where("user_id = ?", userID).
		Order("purchased_at DESC").
		Offset(offset).Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *postPurchaseRepository) ListByPost(ctx context.Context, postID string) ([]db_models.PostPurchase, error) {
	var records []db_models.PostPurchase
	err := r.db.WithContext(ctx).
		Preload("User").Preload("Post").
		Where("post_id = ?", postID).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *postPurchaseRepository) ListAll(ctx context.Context, offset, limit int) ([]db_models.PostPurchase, error) {
	var records []db_models.PostPurchase
	err := r.db.WithContext(ctx).
		Preload("User").Preload("Post").
		Offset(offset).Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *postPurchaseRepository) StatsByPost(ctx context.Context, postID string) (*db_models.PostPurchaseStats, error) {
	var stats db_models.PostPurchaseStats
	err := r.db.WithContext(ctx).
		Model(&db_models.PostPurchase{}).
		Select("COUNT(*) AS total_purchases, COALESCE(SUM(amount), 0) AS total_revenue, COALESCE(MAX(currency), 'usd') AS currency").
		Where("post_id = ?", postID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
