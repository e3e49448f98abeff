package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"neurobridge/internal/models/db_models"
	"neurobridge/internal/models/request_models"
	"neurobridge/internal/models/response_models"
	"neurobridge/internal/payments"
	"neurobridge/internal/repositories"
	"neurobridge/pkg/utils"
)

type PostServiceInterface interface {
	CreatePost(ctx context.Context, userID int64, req request_models.CreatePostRequest) (*response_models.PostResponse, error)
	GetPost(ctx context.Context, id string) (*response_models.PostResponse, error)
	ListPosts(ctx context.Context, offset, limit int) ([]response_models.PostResponse, error)
	ListUserPosts(ctx context.Context, userID int64, offset, limit int) ([]response_models.PostResponse, error)
}

type PostService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
	provider payments.Provider
}

func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository, provider payments.Provider) PostServiceInterface {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		provider: provider,
	}
}

func (p *PostService) CreatePost(ctx context.Context, userID int64, req request_models.CreatePostRequest) (*response_models.PostResponse, error) {
	user, err := p.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	now := time.Now()
	datePublished := req.DatePublished
	if datePublished == nil {
		ts := now.Unix()
		datePublished = &ts
	}
	scheduledTime := now.Unix()
	if req.ScheduledTime != nil {
		scheduledTime = *req.ScheduledTime
	}

	post := &db_models.Post{
		ID:            uuid.New().String(),
		ImageURL:      req.ImageURL,
		Title:         req.Title,
		UserID:        &userID,
		UserName:      userDisplayName(user),
		Date:          now.Format("2006-01-02"),
		ReadTime:      req.ReadTime,
		Tags:          req.Tags,
		Price:         req.Price,
		HTMLContent:   req.HTMLContent,
		AllowComments: req.AllowComments,
		Tier:          req.Tier,
		Collection:    req.Collection,
		Attachments:   req.Attachments,
		DatePublished: datePublished,
		ScheduledTime: scheduledTime,
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}

	p.registerPrice(ctx, post)

	return postResponse(post), nil
}

// registerPrice backfills Stripe price/product handles for paid posts. A
// provider failure leaves the post published but not billable, so it is
// logged rather than surfaced.
func (p *PostService) registerPrice(ctx context.Context, post *db_models.Post) {
	if post.Price == nil || *post.Price <= 0 {
		return
	}

	created, err := p.provider.CreatePrice(ctx, post.Title, int64(*post.Price*100), "usd")
	if err != nil {
		log.Printf("failed to create stripe price for post %s: %v", post.ID, err)
		return
	}
	if err := p.postRepo.UpdateStripeHandles(ctx, post.ID, created.PriceID, created.ProductID); err != nil {
		log.Printf("failed to store stripe handles for post %s: %v", post.ID, err)
		return
	}
	post.StripePriceID = &created.PriceID
	post.StripeProductID = &created.ProductID
}

func (p *PostService) GetPost(ctx context.Context, id string) (*response_models.PostResponse, error) {
	post, err := p.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}
	return postResponse(post), nil
}

func (p *PostService) ListPosts(ctx context.Context, offset, limit int) ([]response_models.PostResponse, error) {
	posts, err := p.postRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return postResponses(posts), nil
}

func (p *PostService) ListUserPosts(ctx context.Context, userID int64, offset, limit int) ([]response_models.PostResponse, error) {
	posts, err := p.postRepo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return postResponses(posts), nil
}

func userDisplayName(user *db_models.User) string {
	return displayNameFromEmail(user.Email)
}

func postResponse(post *db_models.Post) *response_models.PostResponse {
	return &response_models.PostResponse{
		ID:              post.ID,
		ImageURL:        post.ImageURL,
		Title:           post.Title,
		UserID:          post.UserID,
		UserName:        post.UserName,
		Date:            post.Date,
		ReadTime:        post.ReadTime,
		Tags:            post.Tags,
		Price:           post.Price,
		HTMLContent:     post.HTMLContent,
		AllowComments:   post.AllowComments,
		Tier:            post.Tier,
		Collection:      post.Collection,
		Attachments:     post.Attachments,
		DatePublished:   post.DatePublished,
		ScheduledTime:   post.ScheduledTime,
		StripePriceID:   post.StripePriceID,
		StripeProductID: post.StripeProductID,
		UpdatedAt:       post.UpdatedAt,
	}
}

func postResponses(posts []db_models.Post) []response_models.PostResponse {
	out := make([]response_models.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, *postResponse(&posts[i]))
	}
	return out
}
