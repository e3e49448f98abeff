package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neurobridge/internal/models/db_models"
	"neurobridge/pkg/utils"
)

func newTrackingFixture() (*fakeTrackingRepo, *fakeUserRepo, TrackingServiceInterface) {
	trackingRepo := &fakeTrackingRepo{}
	userRepo := &fakeUserRepo{}
	userRepo.add(&db_models.User{Email: "ada@example.com", Role: "caregiver"})
	return trackingRepo, userRepo, NewTrackingService(trackingRepo, userRepo)
}

func TestRecordCounters_UpsertIncrement(t *testing.T) {
	trackingRepo, _, svc := newTrackingFixture()
	ctx := context.Background()

	require.NoError(t, svc.RecordLogin(ctx, 1))
	require.NoError(t, svc.RecordLogin(ctx, 1))
	require.NoError(t, svc.RecordPostView(ctx, 1))
	require.NoError(t, svc.RecordPostPurchase(ctx, 1))
	require.NoError(t, svc.RecordProfileView(ctx, 1))

	assert.Equal(t, 2, trackingRepo.logins[1])
	assert.Equal(t, 1, trackingRepo.viewedPosts[1])
	assert.Equal(t, 1, trackingRepo.boughtPosts[1])
	assert.Equal(t, 1, trackingRepo.profileViews[1])

	resp, err := svc.GetTracking(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.LoginCount)
	assert.Equal(t, 1, resp.ViewedPostsCount)
	assert.Equal(t, 1, resp.BoughtPostsCount)
	assert.Equal(t, 1, resp.ProfileViewCount)
}

func TestRecordCounters_UnknownUser(t *testing.T) {
	_, _, svc := newTrackingFixture()

	err := svc.RecordLogin(context.Background(), 42)
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestRecordCounters_StorageError(t *testing.T) {
	trackingRepo, _, svc := newTrackingFixture()
	trackingRepo.incErr = assert.AnError

	err := svc.RecordPostView(context.Background(), 1)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
