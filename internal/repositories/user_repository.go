package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"neurobridge/internal/models/db_models"
)

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	CreateCaregiverAccount(ctx context.Context, user *db_models.User, caregiver *db_models.Caregiver) error
	CreateClinicianAccount(ctx context.Context, user *db_models.User, clinician *db_models.Clinician) error
	UpdateStripeCustomerID(ctx context.Context, id int64, customerID string) error
	TouchLastActive(ctx context.Context, id int64, at int64) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (u *userRepository) FindByID(ctx context.Context, id int64) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "user_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// CreateCaregiverAccount writes the user row and its caregiver profile in one
// transaction so a signup never leaves a half-created account behind.
func (u *userRepository) CreateCaregiverAccount(ctx context.Context, user *db_models.User, caregiver *db_models.Caregiver) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		caregiver.UserID = user.UserID
		return tx.Create(caregiver).Error
	})
}

func (u *userRepository) CreateClinicianAccount(ctx context.Context, user *db_models.User, clinician *db_models.Clinician) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		clinician.UserID = user.UserID
		return tx.Create(clinician).Error
	})
}

func (u *userRepository) UpdateStripeCustomerID(ctx context.Context, id int64, customerID string) error {
	return u.db.WithContext(ctx).Model(&db_models.User{}).
		Where("user_id = ?", id).
		Update("stripe_customer_id", customerID).Error
}

func (u *userRepository) TouchLastActive(ctx context.Context, id int64, at int64) error {
	return u.db.WithContext(ctx).Model(&db_models.User{}).
		Where("user_id = ?", id).
		Update("last_active_at", at).Error
}
