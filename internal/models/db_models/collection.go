package db_models

type Collection struct {
	CollectionID int64  `gorm:"primaryKey;autoIncrement"`
	UserID       int64  `gorm:"index;not null"`
	Name         string `gorm:"size:255;not null"`
	CreatedAt    int64  `gorm:"autoCreateTime"`

	User User `gorm:"foreignKey:UserID;references:UserID"`
}
