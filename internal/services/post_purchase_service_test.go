package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neurobridge/internal/models/db_models"
	"neurobridge/pkg/utils"
)

func newPostPurchaseFixture() (*memPostPurchaseRepo, PostPurchaseServiceInterface) {
	purchases := &memPostPurchaseRepo{}
	postRepo := &fakePostRepo{}
	userRepo := &fakeUserRepo{}
	userRepo.add(&db_models.User{Email: "ada@example.com", Role: "caregiver"})

	purchases.rows = []*db_models.PostPurchase{
		{
			ID:       1,
			UserID:   1,
			PostID:   "post-1",
			Amount:   2000,
			Currency: "usd",
			User:     db_models.User{UserID: 1, Email: "ada@example.com"},
			Post:     db_models.Post{ID: "post-1", Title: "Sensory Strategies at Home", Tier: "premium"},
		},
		{
			ID:       2,
			UserID:   1,
			PostID:   "post-2",
			Amount:   1500,
			Currency: "usd",
			User:     db_models.User{UserID: 1, Email: "ada@example.com"},
			Post:     db_models.Post{ID: "post-2", Title: "Routines That Stick", Tier: "premium"},
		},
	}
	purchases.nextID = 2

	return purchases, NewPostPurchaseService(purchases, postRepo, userRepo)
}

func TestListPurchasedPosts_ReturnsFullPosts(t *testing.T) {
	_, svc := newPostPurchaseFixture()

	posts, err := svc.ListPurchasedPosts(context.Background(), 1, 0, 20)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	titles := []string{posts[0].Title, posts[1].Title}
	assert.Contains(t, titles, "Sensory Strategies at Home")
	assert.Contains(t, titles, "Routines That Stick")
	assert.Equal(t, "premium", posts[0].Tier)
}

func TestListPurchasedPosts_UnknownUser(t *testing.T) {
	_, svc := newPostPurchaseFixture()

	_, err := svc.ListPurchasedPosts(context.Background(), 42, 0, 20)
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestListUserPurchases_IncludesPostTitleAndUserName(t *testing.T) {
	_, svc := newPostPurchaseFixture()

	records, err := svc.ListUserPurchases(context.Background(), 1, 0, 20)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "ada", records[0].UserName)
	assert.NotEmpty(t, records[0].PostTitle)
}
