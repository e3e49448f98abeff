package repositories

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"neurobridge/internal/models/db_models"
)

type CaregiverRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*db_models.Caregiver, error)
	Updates(ctx context.Context, userID int64, fields map[string]interface{}) error
	UpdateContentPreferences(ctx context.Context, userID int64, tags []string) error
	AppendSubscribedClinician(ctx context.Context, caregiverID int64, clinicianID string) error
	RemoveSubscribedClinician(ctx context.Context, caregiverID int64, clinicianID string) error
	AppendPurchasedContent(ctx context.Context, caregiverID int64, postID string) error
}

type caregiverRepository struct {
	db *gorm.DB
}

func NewCaregiverRepository(db *gorm.DB) CaregiverRepository {
	return &caregiverRepository{db: db}
}

func (c *caregiverRepository) FindByUserID(ctx context.Context, userID int64) (*db_models.Caregiver, error) {
	var caregiver db_models.Caregiver
	err := c.db.WithContext(ctx).First(&caregiver, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &caregiver, nil
}

func (c *caregiverRepository) Updates(ctx context.Context, userID int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return c.db.WithContext(ctx).Model(&db_models.Caregiver{}).
		Where("user_id = ?", userID).
		Updates(fields).Error
}

func (c *caregiverRepository) UpdateContentPreferences(ctx context.Context, userID int64, tags []string) error {
	return c.db.WithContext(ctx).Model(&db_models.Caregiver{}).
		Where("user_id = ?", userID).
		Update("content_preferences_tags", pq.StringArray(tags)).Error
}

func (c *caregiverRepository) AppendSubscribedClinician(ctx context.Context, caregiverID int64, clinicianID string) error {
	return c.db.WithContext(ctx).Exec(
		`UPDATE caregivers
		 SET subscribed_clinicians_ids = array_append(subscribed_clinicians_ids, ?)
		 WHERE user_id = ?`,
		clinicianID, caregiverID).Error
}

func (c *caregiverRepository) RemoveSubscribedClinician(ctx context.Context, caregiverID int64, clinicianID string) error {
	return c.db.WithContext(ctx).Exec(
		`UPDATE caregivers
		 SET subscribed_clinicians_ids = array_remove(subscribed_clinicians_ids, ?)
		 WHERE user_id = ?`,
		clinicianID, caregiverID).Error
}

func (c *caregiverRepository) AppendPurchasedContent(ctx context.Context, caregiverID int64, postID string) error {
	return c.db.WithContext(ctx).Exec(
		`UPDATE caregivers
		 SET purchased_feed_content_ids = array_append(purchased_feed_content_ids, ?)
		 WHERE user_id = ? AND NOT (? = ANY(purchased_feed_content_ids))`,
		postID, caregiverID, postID).Error
}
