package db_models

type UserTracking struct {
	UserID           int64 `gorm:"primaryKey"`
	LoginCount       int   `gorm:"not null;default:0"`
	ViewedPostsCount int   `gorm:"not null;default:0"`
	BoughtPostsCount int   `gorm:"not null;default:0"`
	ProfileViewCount int   `gorm:"not null;default:0"`
	UpdatedAt        int64 `gorm:"autoUpdateTime"`

	User User `gorm:"foreignKey:UserID;references:UserID"`
}
