package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"neurobridge/internal/models/db_models"
)

type PurchaseRepository interface {
	Insert(ctx context.Context, purchase *db_models.Purchase) error
	FindByID(ctx context.Context, id int64) (*db_models.Purchase, error)
	FindBySessionID(ctx context.Context, sessionID string) (*db_models.Purchase, error)
	FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (*db_models.Purchase, error)

	// TransitionBySessionID moves the purchase with the given session handle
	// to the target status if it is still pending. The bool result reports
	// whether the transition was applied; re-applying a terminal status is a
	// no-op, not an error. paymentIntentID, when non-empty, is backfilled
	// either way.
	TransitionBySessionID(ctx context.Context, sessionID string, to db_models.PurchaseStatus, paymentIntentID string) (*db_models.Purchase, bool, error)
	TransitionByPaymentIntentID(ctx context.Context, paymentIntentID string, to db_models.PurchaseStatus) (*db_models.Purchase, bool, error)
}

type purchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (p *purchaseRepository) Insert(ctx context.Context, purchase *db_models.Purchase) error {
	return p.db.WithContext(ctx).Create(purchase).Error
}

func (p *purchaseRepository) FindByID(ctx context.Context, id int64) (*db_models.Purchase, error) {
	var purchase db_models.Purchase
	err := p.db.WithContext(ctx).First(&purchase, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &purchase, nil
}

func (p *purchaseRepository) FindBySessionID(ctx context.Context, sessionID string) (*db_models.Purchase, error) {
	var purchase db_models.Purchase
	err := p.db.WithContext(ctx).First(&purchase, "stripe_session_id = ?", sessionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &purchase, nil
}

func (p *purchaseRepository) FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (*db_models.Purchase, error) {
	var purchase db_models.Purchase
	err := p.db.WithContext(ctx).First(&purchase, "stripe_payment_intent_id = ?", paymentIntentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &purchase, nil
}

func (p *purchaseRepository) TransitionBySessionID(ctx context.Context, sessionID string, to db_models.PurchaseStatus, paymentIntentID string) (*db_models.Purchase, bool, error) {
	return p.transition(ctx, "stripe_session_id = ?", sessionID, to, paymentIntentID)
}

func (p *purchaseRepository) TransitionByPaymentIntentID(ctx context.Context, paymentIntentID string, to db_models.PurchaseStatus) (*db_models.Purchase, bool, error) {
	return p.transition(ctx, "stripe_payment_intent_id = ?", paymentIntentID, to, "")
}

// transition does the read-modify-write under a row lock so the webhook and
// verification paths cannot lose each other's updates.
func (p *purchaseRepository) transition(ctx context.Context, cond string, arg interface{}, to db_models.PurchaseStatus, paymentIntentID string) (*db_models.Purchase, bool, error) {
	var purchase db_models.Purchase
	applied := false

	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&purchase, cond, arg).Error
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if paymentIntentID != "" && purchase.StripePaymentIntentID == nil {
			updates["stripe_payment_intent_id"] = paymentIntentID
			purchase.StripePaymentIntentID = &paymentIntentID
		}

		if !purchase.Status.Terminal() {
			updates["status"] = to
			purchase.Status = to
			applied = true
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&db_models.Purchase{}).
			Where("id = ?", purchase.ID).
			Updates(updates).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return &purchase, applied, nil
}
