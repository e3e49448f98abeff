package db_models

import "github.com/lib/pq"

const (
	TierFree      = "free"
	TierPremium   = "premium"
	TierExclusive = "exclusive"
)

type Post struct {
	ID            string `gorm:"primaryKey"`
	ImageURL      string `gorm:"not null"`
	Title         string `gorm:"not null"`
	UserID        *int64 `gorm:"index"`
	UserName      string
	Date          string
	ReadTime      string
	Tags          pq.StringArray `gorm:"type:text[]"`
	Price         *float64
	HTMLContent   string `gorm:"type:text;not null"`
	AllowComments bool
	Tier          string `gorm:"not null"`
	Collection    string
	Attachments   pq.StringArray `gorm:"type:text[]"`
	DatePublished *int64

	// Posts scheduled in the future are invisible to everyone, including
	// buyers.
	ScheduledTime int64 `gorm:"not null"`

	StripePriceID   *string
	StripeProductID *string

	UpdatedAt int64 `gorm:"autoUpdateTime"`

	User *User `gorm:"foreignKey:UserID;references:UserID"`
}
