package services

import (
	"context"
	"time"

	"neurobridge/internal/models/db_models"
	"neurobridge/internal/models/response_models"
	"neurobridge/internal/repositories"
	"neurobridge/pkg/utils"
)

// Access decision reasons, surfaced to clients as-is.
const (
	ReasonFreeContent      = "free content"
	ReasonPurchased        = "purchased"
	ReasonNotYetAvailable  = "not yet available"
	ReasonPurchaseRequired = "purchase required"
)

type AccessServiceInterface interface {
	CanViewPost(ctx context.Context, userID int64, postID string) (*response_models.AccessResponse, error)
}

type AccessService struct {
	postRepo      repositories.PostRepository
	postPurchases repositories.PostPurchaseRepository
	purchaseRepo  repositories.PurchaseRepository
	now           func() time.Time
}

func NewAccessService(
	postRepo repositories.PostRepository,
	postPurchases repositories.PostPurchaseRepository,
	purchaseRepo repositories.PurchaseRepository,
) AccessServiceInterface {
	return &AccessService{
		postRepo:      postRepo,
		postPurchases: postPurchases,
		purchaseRepo:  purchaseRepo,
		now:           time.Now,
	}
}

// CanViewPost decides whether a user may read a post's full content. The
// scheduling gate wins over everything else: a post scheduled in the future
// is invisible even to its purchaser.
func (a *AccessService) CanViewPost(ctx context.Context, userID int64, postID string) (*response_models.AccessResponse, error) {
	post, err := a.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}

	decision := &response_models.AccessResponse{
		PostID: postID,
		UserID: userID,
	}

	if post.ScheduledTime > a.now().Unix() {
		decision.Reason = ReasonNotYetAvailable
		return decision, nil
	}

	if post.Tier == db_models.TierFree || post.Price == nil || *post.Price <= 0 {
		decision.Allowed = true
		decision.Reason = ReasonFreeContent
		return decision, nil
	}

	record, err := a.postPurchases.FindByUserAndPost(ctx, userID, postID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record != nil && a.originatingPurchaseCompleted(ctx, record) {
		decision.Allowed = true
		decision.Reason = ReasonPurchased
		return decision, nil
	}

	decision.Reason = ReasonPurchaseRequired
	return decision, nil
}

// A fulfillment row without a purchase back-reference (e.g. a manual grant)
// counts on its own; one that references a Purchase must point at a
// completed one.
func (a *AccessService) originatingPurchaseCompleted(ctx context.Context, record *db_models.PostPurchase) bool {
	if record.PurchaseID == nil {
		return true
	}
	purchase, err := a.purchaseRepo.FindByID(ctx, *record.PurchaseID)
	if err != nil || purchase == nil {
		return false
	}
	return purchase.Status == db_models.PurchaseStatusCompleted
}
