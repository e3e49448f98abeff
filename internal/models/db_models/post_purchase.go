package db_models

// PostPurchase is the permanent ownership record, written once when a
// Purchase completes. The composite unique index is what makes fulfillment
// safe under concurrent webhook redelivery.
type PostPurchase struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	UserID     int64  `gorm:"not null;uniqueIndex:uq_post_purchases_user_post"`
	PostID     string `gorm:"not null;uniqueIndex:uq_post_purchases_user_post"`
	PurchaseID *int64 `gorm:"index"`
	Amount     int64  `gorm:"not null"`
	Currency   string `gorm:"size:3;not null;default:usd"`

	PurchasedAt int64 `gorm:"autoCreateTime"`

	User     User      `gorm:"foreignKey:UserID;references:UserID"`
	Post     Post      `gorm:"foreignKey:PostID"`
	Purchase *Purchase `gorm:"foreignKey:PurchaseID"`
}

// PostPurchaseStats is a scan target for aggregate purchase queries.
type PostPurchaseStats struct {
	TotalPurchases int64
	TotalRevenue   int64
	Currency       string
}
