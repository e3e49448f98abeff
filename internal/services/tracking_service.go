package services

import (
	"context"

	"neurobridge/internal/models/response_models"
	"neurobridge/internal/repositories"
	"neurobridge/pkg/utils"
)

type TrackingServiceInterface interface {
	GetTracking(ctx context.Context, userID int64) (*response_models.TrackingResponse, error)
	RecordLogin(ctx context.Context, userID int64) error
	RecordPostView(ctx context.Context, userID int64) error
	RecordPostPurchase(ctx context.Context, userID int64) error
	RecordProfileView(ctx context.Context, userID int64) error
}

type TrackingService struct {
	trackingRepo repositories.TrackingRepository
	userRepo     repositories.UserRepository
}

func NewTrackingService(trackingRepo repositories.TrackingRepository, userRepo repositories.UserRepository) TrackingServiceInterface {
	return &TrackingService{trackingRepo: trackingRepo, userRepo: userRepo}
}

func (t *TrackingService) GetTracking(ctx context.Context, userID int64) (*response_models.TrackingResponse, error) {
	user, err := t.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	tracking, err := t.trackingRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := response_models.TrackingResponse{UserID: userID}
	if tracking != nil {
		resp.LoginCount = tracking.LoginCount
		resp.ViewedPostsCount = tracking.ViewedPostsCount
		resp.BoughtPostsCount = tracking.BoughtPostsCount
		resp.ProfileViewCount = tracking.ProfileViewCount
		resp.UpdatedAt = tracking.UpdatedAt
	}
	return &resp, nil
}

func (t *TrackingService) RecordLogin(ctx context.Context, userID int64) error {
	return t.record(ctx, userID, t.trackingRepo.IncrementLogin)
}

func (t *TrackingService) RecordPostView(ctx context.Context, userID int64) error {
	return t.record(ctx, userID, t.trackingRepo.IncrementViewedPosts)
}

func (t *TrackingService) RecordPostPurchase(ctx context.Context, userID int64) error {
	return t.record(ctx, userID, t.trackingRepo.IncrementBoughtPosts)
}

func (t *TrackingService) RecordProfileView(ctx context.Context, userID int64) error {
	return t.record(ctx, userID, t.trackingRepo.IncrementProfileViews)
}

func (t *TrackingService) record(ctx context.Context, userID int64, increment func(context.Context, int64) error) error {
	user, err := t.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}
	if err := increment(ctx, userID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
