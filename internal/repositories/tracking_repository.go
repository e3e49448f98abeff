package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"neurobridge/internal/models/db_models"
)

type TrackingRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*db_models.UserTracking, error)
	IncrementLogin(ctx context.Context, userID int64) error
	IncrementViewedPosts(ctx context.Context, userID int64) error
	IncrementBoughtPosts(ctx context.Context, userID int64) error
	IncrementProfileViews(ctx context.Context, userID int64) error
}

type trackingRepository struct {
	db *gorm.DB
}

func NewTrackingRepository(db *gorm.DB) TrackingRepository {
	return &trackingRepository{db: db}
}

func (t *trackingRepository) FindByUserID(ctx context.Context, userID int64) (*db_models.UserTracking, error) {
	var tracking db_models.UserTracking
	err := t.db.WithContext(ctx).First(&tracking, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tracking, nil
}

func (t *trackingRepository) IncrementLogin(ctx context.Context, userID int64) error {
	return t.increment(ctx, userID, "login_count")
}

func (t *trackingRepository) IncrementViewedPosts(ctx context.Context, userID int64) error {
	return t.increment(ctx, userID, "viewed_posts_count")
}

func (t *trackingRepository) IncrementBoughtPosts(ctx context.Context, userID int64) error {
	return t.increment(ctx, userID, "bought_posts_count")
}

func (t *trackingRepository) IncrementProfileViews(ctx context.Context, userID int64) error {
	return t.increment(ctx, userID, "profile_view_count")
}

// increment is an upsert: a missing tracking row is created on first use.
func (t *trackingRepository) increment(ctx context.Context, userID int64, column string) error {
	row := db_models.UserTracking{UserID: userID}
	switch column {
	case "login_count":
		row.LoginCount = 1
	case "viewed_posts_count":
		row.ViewedPostsCount = 1
	case "bought_posts_count":
		row.BoughtPostsCount = 1
	case "profile_view_count":
		row.ProfileViewCount = 1
	default:
		return fmt.Errorf("unknown tracking column %q", column)
	}

	return t.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			column:       gorm.Expr(fmt.Sprintf("user_trackings.%s + 1", column)),
			"updated_at": time.Now().Unix(),
		}),
	}).Create(&row).Error
}
