package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neurobridge/internal/models/db_models"
	"neurobridge/pkg/utils"
)

func newAccessFixture(now time.Time) (*fakePostRepo, *memPostPurchaseRepo, *memPurchaseRepo, *AccessService) {
	posts := &fakePostRepo{posts: map[string]*db_models.Post{}}
	fulfillments := &memPostPurchaseRepo{}
	purchases := &memPurchaseRepo{}

	svc := &AccessService{
		postRepo:      posts,
		postPurchases: fulfillments,
		purchaseRepo:  purchases,
		now:           func() time.Time { return now },
	}
	return posts, fulfillments, purchases, svc
}

func TestCanViewPost_ScheduledInFutureDeniedEvenWhenPurchased(t *testing.T) {
	now := time.Now()
	posts, fulfillments, purchases, svc := newAccessFixture(now)

	priceID := "price_1"
	posts.posts["post-1"] = &db_models.Post{
		ID:            "post-1",
		Tier:          db_models.TierPremium,
		Price:         floatPtr(20),
		StripePriceID: &priceID,
		ScheduledTime: now.Add(time.Hour).Unix(),
	}

	purchase := &db_models.Purchase{UserID: 7, PostID: "post-1", Status: db_models.PurchaseStatusCompleted}
	require.NoError(t, purchases.Insert(context.Background(), purchase))
	require.NoError(t, fulfillments.Insert(context.Background(), &db_models.PostPurchase{
		UserID: 7, PostID: "post-1", PurchaseID: &purchase.ID,
	}))

	decision, err := svc.CanViewPost(context.Background(), 7, "post-1")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, ReasonNotYetAvailable, decision.Reason)
}

func TestCanViewPost_FreeTier(t *testing.T) {
	now := time.Now()
	posts, _, _, svc := newAccessFixture(now)
	posts.posts["post-1"] = &db_models.Post{
		ID:            "post-1",
		Tier:          db_models.TierFree,
		ScheduledTime: now.Add(-time.Hour).Unix(),
	}

	decision, err := svc.CanViewPost(context.Background(), 7, "post-1")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, ReasonFreeContent, decision.Reason)
}

func TestCanViewPost_PremiumWithZeroPriceIsFree(t *testing.T) {
	now := time.Now()
	posts, _, _, svc := newAccessFixture(now)
	posts.posts["post-1"] = &db_models.Post{
		ID:            "post-1",
		Tier:          db_models.TierPremium,
		Price:         floatPtr(0),
		ScheduledTime: now.Add(-time.Hour).Unix(),
	}

	decision, err := svc.CanViewPost(context.Background(), 7, "post-1")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, ReasonFreeContent, decision.Reason)
}

func TestCanViewPost_PurchasedPremium(t *testing.T) {
	now := time.Now()
	posts, fulfillments, purchases, svc := newAccessFixture(now)
	posts.posts["post-1"] = &db_models.Post{
		ID:            "post-1",
		Tier:          db_models.TierPremium,
		Price:         floatPtr(20),
		ScheduledTime: now.Add(-time.Hour).Unix(),
	}

	purchase := &db_models.Purchase{UserID: 7, PostID: "post-1", Status: db_models.PurchaseStatusCompleted}
	require.NoError(t, purchases.Insert(context.Background(), purchase))
	require.NoError(t, fulfillments.Insert(context.Background(), &db_models.PostPurchase{
		UserID: 7, PostID: "post-1", PurchaseID: &purchase.ID,
	}))

	decision, err := svc.CanViewPost(context.Background(), 7, "post-1")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, ReasonPurchased, decision.Reason)
}

func TestCanViewPost_FulfillmentFromPendingPurchaseDenied(t *testing.T) {
	now := time.Now()
	posts, fulfillments, purchases, svc := newAccessFixture(now)
	posts.posts["post-1"] = &db_models.Post{
		ID:            "post-1",
		Tier:          db_models.TierPremium,
		Price:         floatPtr(20),
		ScheduledTime: now.Add(-time.Hour).Unix(),
	}

	purchase := &db_models.Purchase{UserID: 7, PostID: "post-1", Status: db_models.PurchaseStatusPending}
	require.NoError(t, purchases.Insert(context.Background(), purchase))
	require.NoError(t, fulfillments.Insert(context.Background(), &db_models.PostPurchase{
		UserID: 7, PostID: "post-1", PurchaseID: &purchase.ID,
	}))

	decision, err := svc.CanViewPost(context.Background(), 7, "post-1")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, ReasonPurchaseRequired, decision.Reason)
}

func TestCanViewPost_ManualGrantCounts(t *testing.T) {
	now := time.Now()
	posts, fulfillments, _, svc := newAccessFixture(now)
	posts.posts["post-1"] = &db_models.Post{
		ID:            "post-1",
		Tier:          db_models.TierExclusive,
		Price:         floatPtr(50),
		ScheduledTime: now.Add(-time.Hour).Unix(),
	}

	// No purchase back-reference: treated as a grant.
	require.NoError(t, fulfillments.Insert(context.Background(), &db_models.PostPurchase{
		UserID: 7, PostID: "post-1",
	}))

	decision, err := svc.CanViewPost(context.Background(), 7, "post-1")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, ReasonPurchased, decision.Reason)
}

func TestCanViewPost_NotPurchased(t *testing.T) {
	now := time.Now()
	posts, _, _, svc := newAccessFixture(now)
	posts.posts["post-1"] = &db_models.Post{
		ID:            "post-1",
		Tier:          db_models.TierPremium,
		Price:         floatPtr(20),
		ScheduledTime: now.Add(-time.Hour).Unix(),
	}

	decision, err := svc.CanViewPost(context.Background(), 99, "post-1")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, ReasonPurchaseRequired, decision.Reason)
}

func TestCanViewPost_UnknownPost(t *testing.T) {
	_, _, _, svc := newAccessFixture(time.Now())

	_, err := svc.CanViewPost(context.Background(), 7, "missing")
	assert.ErrorIs(t, err, utils.ErrPostNotFound)
}
