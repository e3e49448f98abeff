package db_models

const (
	RoleCaregiver = "caregiver"
	RoleClinician = "clinician"
	RoleAdmin     = "admin"
)

type User struct {
	UserID           int64   `gorm:"primaryKey;autoIncrement"`
	Email            string  `gorm:"uniqueIndex;not null"`
	Role             string  `gorm:"not null"`
	Password         string  `gorm:"not null"`
	StripeCustomerID *string `gorm:"uniqueIndex"`

	LastActiveAt     *int64
	LastEngagementAt *int64
	CreatedAt        int64 `gorm:"autoCreateTime"`
	UpdatedAt        int64 `gorm:"autoUpdateTime"`
}
