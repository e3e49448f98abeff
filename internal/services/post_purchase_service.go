package services

import (
	"context"
	"strings"

	"neurobridge/internal/models/db_models"
	"neurobridge/internal/models/response_models"
	"neurobridge/internal/repositories"
	"neurobridge/pkg/utils"
)

type PostPurchaseServiceInterface interface {
	ListUserPurchases(ctx context.Context, userID int64, offset, limit int) ([]response_models.UserPostPurchaseResponse, error)
	ListPurchasedPosts(ctx context.Context, userID int64, offset, limit int) ([]response_models.PostResponse, error)
	ListPostPurchases(ctx context.Context, postID string) ([]response_models.UserPostPurchaseResponse, error)
	ListAllPurchases(ctx context.Context, offset, limit int) ([]response_models.UserPostPurchaseResponse, error)
	PostStats(ctx context.Context, postID string) (*response_models.PostPurchaseStatsResponse, error)
	CheckPurchase(ctx context.Context, userID int64, postID string) (*response_models.PurchaseCheckResponse, error)
}

type PostPurchaseService struct {
	postPurchases repositories.PostPurchaseRepository
	postRepo      repositories.PostRepository
	userRepo      repositories.UserRepository
}

func NewPostPurchaseService(
	postPurchases repositories.PostPurchaseRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
) PostPurchaseServiceInterface {
	return &PostPurchaseService{
		postPurchases: postPurchases,
		postRepo:      postRepo,
		userRepo:      userRepo,
	}
}

func (p *PostPurchaseService) ListUserPurchases(ctx context.Context, userID int64, offset, limit int) ([]response_models.UserPostPurchaseResponse, error) {
	user, err := p.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	records, err := p.postPurchases.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return postPurchaseResponses(records), nil
}

// ListPurchasedPosts returns the purchased content itself rather than the
// fulfillment rows, for a caregiver's "my library" view.
func (p *PostPurchaseService) ListPurchasedPosts(ctx context.Context, userID int64, offset, limit int) ([]response_models.PostResponse, error) {
	user, err := p.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	records, err := p.postPurchases.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PostResponse, 0, len(records))
	for i := range records {
		out = append(out, *postResponse(&records[i].Post))
	}
	return out, nil
}

func (p *PostPurchaseService) ListPostPurchases(ctx context.Context, postID string) ([]response_models.UserPostPurchaseResponse, error) {
	post, err := p.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}

	records, err := p.postPurchases.ListByPost(ctx, postID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return postPurchaseResponses(records), nil
}

func (p *PostPurchaseService) ListAllPurchases(ctx context.Context, offset, limit int) ([]response_models.UserPostPurchaseResponse, error) {
	records, err := p.postPurchases.ListAll(ctx, offset, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return postPurchaseResponses(records), nil
}

func (p *PostPurchaseService) PostStats(ctx context.Context, postID string) (*response_models.PostPurchaseStatsResponse, error) {
	post, err := p.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}

	stats, err := p.postPurchases.StatsByPost(ctx, postID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.PostPurchaseStatsResponse{
		PostID:         postID,
		PostTitle:      post.Title,
		TotalPurchases: stats.TotalPurchases,
		TotalRevenue:   stats.TotalRevenue,
		Currency:       stats.Currency,
	}, nil
}

func (p *PostPurchaseService) CheckPurchase(ctx context.Context, userID int64, postID string) (*response_models.PurchaseCheckResponse, error) {
	record, err := p.postPurchases.FindByUserAndPost(ctx, userID, postID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.PurchaseCheckResponse{
		UserID: userID,
		PostID: postID,
	}
	if record != nil {
		resp.HasPurchased = true
		resp.Details = &response_models.PurchaseCheckDetails{
			Amount:      record.Amount,
			Currency:    record.Currency,
			PurchasedAt: record.PurchasedAt,
		}
	}
	return resp, nil
}

func postPurchaseResponse(record *db_models.PostPurchase) response_models.UserPostPurchaseResponse {
	resp := response_models.UserPostPurchaseResponse{
		UserID:      record.UserID,
		PostID:      record.PostID,
		Amount:      record.Amount,
		Currency:    record.Currency,
		PurchasedAt: record.PurchasedAt,
	}
	if record.User.Email != "" {
		resp.UserEmail = record.User.Email
		resp.UserName = displayNameFromEmail(record.User.Email)
	}
	resp.PostTitle = record.Post.Title
	return resp
}

func postPurchaseResponses(records []db_models.PostPurchase) []response_models.UserPostPurchaseResponse {
	out := make([]response_models.UserPostPurchaseResponse, 0, len(records))
	for i := range records {
		out = append(out, postPurchaseResponse(&records[i]))
	}
	return out
}

func displayNameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
