package db_models

import "gorm.io/datatypes"

type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusCompleted PurchaseStatus = "completed"
	PurchaseStatusFailed    PurchaseStatus = "failed"
	PurchaseStatusExpired   PurchaseStatus = "expired"
)

// Terminal reports whether no further transition may leave s.
func (s PurchaseStatus) Terminal() bool {
	return s == PurchaseStatusCompleted || s == PurchaseStatusFailed || s == PurchaseStatusExpired
}

// Purchase is the transient payment-intent record. It is created pending at
// checkout, mutated only by the reconciler, and never deleted.
type Purchase struct {
	ID                    int64          `gorm:"primaryKey;autoIncrement"`
	UserID                int64          `gorm:"index;not null"`
	PostID                string         `gorm:"index;not null"`
	StripeSessionID       *string        `gorm:"uniqueIndex"`
	StripePaymentIntentID *string        `gorm:"index"`
	Amount                int64          `gorm:"not null"`
	Currency              string         `gorm:"size:3;not null;default:usd"`
	Status                PurchaseStatus `gorm:"size:50;not null;default:pending;index"`

	// Provider payload snapshots for traceability.
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}
