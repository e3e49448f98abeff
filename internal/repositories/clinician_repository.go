package repositories

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"neurobridge/internal/models/db_models"
)

type ClinicianRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*db_models.Clinician, error)
	ListAll(ctx context.Context, limit int) ([]db_models.Clinician, error)
	ListExcept(ctx context.Context, excludeID int64) ([]db_models.Clinician, error)
	ListByIDs(ctx context.Context, ids []int64) ([]db_models.Clinician, error)
	ListNotInIDs(ctx context.Context, ids []int64) ([]db_models.Clinician, error)
	Updates(ctx context.Context, userID int64, fields map[string]interface{}) error
	UpdateContentPreferences(ctx context.Context, userID int64, tags []string) error
}

type clinicianRepository struct {
	db *gorm.DB
}

func NewClinicianRepository(db *gorm.DB) ClinicianRepository {
	return &clinicianRepository{db: db}
}

func (c *clinicianRepository) FindByUserID(ctx context.Context, userID int64) (*db_models.Clinician, error) {
	var clinician db_models.Clinician
	err := c.db.WithContext(ctx).First(&clinician, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinician, nil
}

func (c *clinicianRepository) ListAll(ctx context.Context, limit int) ([]db_models.Clinician, error) {
	var clinicians []db_models.Clinician
	query := c.db.WithContext(ctx)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&clinicians).Error; err != nil {
		return nil, err
	}
	return clinicians, nil
}

func (c *clinicianRepository) ListExcept(ctx context.Context, excludeID int64) ([]db_models.Clinician, error) {
	var clinicians []db_models.Clinician
	err := c.db.WithContext(ctx).
		Where("user_id <> ?", excludeID).
		Find(&clinicians).Error
	if err != nil {
		return nil, err
	}
	return clinicians, nil
}

func (c *clinicianRepository) ListByIDs(ctx context.Context, ids []int64) ([]db_models.Clinician, error) {
	if len(ids) == 0 {
		return []db_models.Clinician{}, nil
	}
	var clinicians []db_models.Clinician
	err := c.db.WithContext(ctx).
		Where("user_id IN ?", ids).
		Find(&clinicians).Error
	if err != nil {
		return nil, err
	}
	return clinicians, nil
}

func (c *clinicianRepository) ListNotInIDs(ctx context.Context, ids []int64) ([]db_models.Clinician, error) {
	if len(ids) == 0 {
		return c.ListAll(ctx, 0)
	}
	var clinicians []db_models.Clinician
	err := c.db.WithContext(ctx).
		Where("user_id NOT IN ?", ids).
		Find(&clinicians).Error
	if err != nil {
		return nil, err
	}
	return clinicians, nil
}

func (c *clinicianRepository) Updates(ctx context.Context, userID int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return c.db.WithContext(ctx).Model(&db_models.Clinician{}).
		Where("user_id = ?", userID).
		Updates(fields).Error
}

func (c *clinicianRepository) UpdateContentPreferences(ctx context.Context, userID int64, tags []string) error {
	return c.db.WithContext(ctx).Model(&db_models.Clinician{}).
		Where("user_id = ?", userID).
		Update("content_preferences_tags", pq.StringArray(tags)).Error
}
