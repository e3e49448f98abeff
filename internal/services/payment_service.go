package services

import (
	"context"
	"encoding/json"
	"log"
	"strconv"

	"neurobridge/internal/models/db_models"
	"neurobridge/internal/models/request_models"
	"neurobridge/internal/models/response_models"
	"neurobridge/internal/payments"
	"neurobridge/internal/repositories"
	"neurobridge/pkg/utils"
)

type PaymentConfig struct {
	SuccessURL string
	CancelURL  string
}

type PaymentServiceInterface interface {
	CreateCheckout(ctx context.Context, userID int64, req request_models.CreateCheckoutRequest) (*response_models.CheckoutResponse, error)
	VerifyPayment(ctx context.Context, sessionID string) (*response_models.PurchaseResponse, error)
	ProcessWebhook(ctx context.Context, payload []byte, signatureHeader string) error
	EnsureCustomer(ctx context.Context, userID int64, email string) (*response_models.StripeCustomerResponse, error)
	GetCustomer(ctx context.Context, userID int64) (*response_models.StripeCustomerResponse, error)
}

type PaymentService struct {
	provider      payments.Provider
	purchaseRepo  repositories.PurchaseRepository
	postPurchases repositories.PostPurchaseRepository
	postRepo      repositories.PostRepository
	userRepo      repositories.UserRepository
	trackingRepo  repositories.TrackingRepository
	caregiverRepo repositories.CaregiverRepository
	cfg           PaymentConfig
}

func NewPaymentService(
	provider payments.Provider,
	purchaseRepo repositories.PurchaseRepository,
	postPurchases repositories.PostPurchaseRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	trackingRepo repositories.TrackingRepository,
	caregiverRepo repositories.CaregiverRepository,
	cfg PaymentConfig,
) PaymentServiceInterface {
	return &PaymentService{
		provider:      provider,
		purchaseRepo:  purchaseRepo,
		postPurchases: postPurchases,
		postRepo:      postRepo,
		userRepo:      userRepo,
		trackingRepo:  trackingRepo,
		caregiverRepo: caregiverRepo,
		cfg:           cfg,
	}
}

// CreateCheckout opens a checkout session for a paid post and persists the
// pending Purchase referencing it. The provider calls happen first: if they
// fail nothing is written locally. If the local insert fails after the
// session was created, the session is an orphan and reconciliation treats a
// missing Purchase as non-fatal.
func (p *PaymentService) CreateCheckout(ctx context.Context, userID int64, req request_models.CreateCheckoutRequest) (*response_models.CheckoutResponse, error) {
	post, err := p.postRepo.FindByID(ctx, req.PostID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}
	if post.StripePriceID == nil || *post.StripePriceID == "" {
		return nil, utils.ErrPostNotBillable
	}

	user, err := p.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	price, err := p.provider.GetPrice(ctx, *post.StripePriceID)
	if err != nil {
		return nil, err
	}

	successURL := req.SuccessURL
	if successURL == "" {
		successURL = p.cfg.SuccessURL
	}
	cancelURL := req.CancelURL
	if cancelURL == "" {
		cancelURL = p.cfg.CancelURL
	}

	sess, err := p.provider.CreateCheckoutSession(ctx, payments.CheckoutParams{
		PriceID:       price.ID,
		SuccessURL:    successURL,
		CancelURL:     cancelURL,
		CustomerEmail: user.Email,
		Metadata: map[string]string{
			"userId":    strconv.FormatInt(userID, 10),
			"contentId": post.ID,
			"userEmail": user.Email,
		},
	})
	if err != nil {
		return nil, err
	}

	metadata, _ := json.Marshal(map[string]string{
		"stripe_price_id": price.ID,
		"post_title":      post.Title,
	})

	purchase := &db_models.Purchase{
		UserID:          userID,
		PostID:          post.ID,
		StripeSessionID: &sess.ID,
		Amount:          price.UnitAmount,
		Currency:        price.Currency,
		Status:          db_models.PurchaseStatusPending,
		Metadata:        metadata,
	}
	if err := p.purchaseRepo.Insert(ctx, purchase); err != nil {
		log.Printf("checkout: session %s created but purchase insert failed: %v", sess.ID, err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CheckoutResponse{
		SessionID:   sess.ID,
		CheckoutURL: sess.URL,
		Amount:      price.UnitAmount,
		Currency:    price.Currency,
	}, nil
}

// VerifyPayment re-fetches the session from the processor and reconciles the
// local Purchase toward it. Safe to call any number of times.
func (p *PaymentService) VerifyPayment(ctx context.Context, sessionID string) (*response_models.PurchaseResponse, error) {
	sess, err := p.provider.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	existing, err := p.purchaseRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrPurchaseNotFound
	}

	target := db_models.PurchaseStatusFailed
	if sess.PaymentStatus == payments.PaymentStatusPaid {
		target = db_models.PurchaseStatusCompleted
	}

	purchase, _, err := p.purchaseRepo.TransitionBySessionID(ctx, sessionID, target, sess.PaymentIntentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if purchase == nil {
		return nil, utils.ErrPurchaseNotFound
	}

	if purchase.Status == db_models.PurchaseStatusCompleted {
		p.recordFulfillment(ctx, purchase)
	}

	return purchaseResponse(purchase), nil
}

// ProcessWebhook authenticates and dispatches a provider event. Once the
// signature verifies, reconciliation failures are logged and swallowed so the
// endpoint always acks and the processor does not redeliver forever.
func (p *PaymentService) ProcessWebhook(ctx context.Context, payload []byte, signatureHeader string) error {
	event, err := p.provider.ConstructEvent(payload, signatureHeader)
	if err != nil {
		return err
	}

	switch event.Type {
	case payments.EventCheckoutCompleted:
		p.completeBySession(ctx, event.SessionID, event.PaymentIntentID)
	case payments.EventCheckoutExpired:
		p.applyBySession(ctx, event.SessionID, db_models.PurchaseStatusExpired)
	case payments.EventPaymentSucceeded:
		p.completeByPaymentIntent(ctx, event.PaymentIntentID)
	case payments.EventPaymentFailed:
		p.applyByPaymentIntent(ctx, event.PaymentIntentID, db_models.PurchaseStatusFailed)
	default:
		log.Printf("webhook: ignoring event type %s", event.Type)
	}

	return nil
}

func (p *PaymentService) completeBySession(ctx context.Context, sessionID, paymentIntentID string) {
	purchase, _, err := p.purchaseRepo.TransitionBySessionID(ctx, sessionID, db_models.PurchaseStatusCompleted, paymentIntentID)
	if err != nil {
		log.Printf("webhook: failed to complete purchase for session %s: %v", sessionID, err)
		return
	}
	if purchase == nil {
		log.Printf("webhook: no purchase found for session %s", sessionID)
		return
	}
	if purchase.Status == db_models.PurchaseStatusCompleted {
		p.recordFulfillment(ctx, purchase)
	}
}

func (p *PaymentService) completeByPaymentIntent(ctx context.Context, paymentIntentID string) {
	purchase, _, err := p.purchaseRepo.TransitionByPaymentIntentID(ctx, paymentIntentID, db_models.PurchaseStatusCompleted)
	if err != nil {
		log.Printf("webhook: failed to complete purchase for payment intent %s: %v", paymentIntentID, err)
		return
	}
	if purchase == nil {
		log.Printf("webhook: no purchase found for payment intent %s", paymentIntentID)
		return
	}
	if purchase.Status == db_models.PurchaseStatusCompleted {
		p.recordFulfillment(ctx, purchase)
	}
}

func (p *PaymentService) applyBySession(ctx context.Context, sessionID string, to db_models.PurchaseStatus) {
	purchase, _, err := p.purchaseRepo.TransitionBySessionID(ctx, sessionID, to, "")
	if err != nil {
		log.Printf("webhook: failed to mark purchase %s for session %s: %v", to, sessionID, err)
		return
	}
	if purchase == nil {
		log.Printf("webhook: no purchase found for session %s", sessionID)
	}
}

func (p *PaymentService) applyByPaymentIntent(ctx context.Context, paymentIntentID string, to db_models.PurchaseStatus) {
	purchase, _, err := p.purchaseRepo.TransitionByPaymentIntentID(ctx, paymentIntentID, to)
	if err != nil {
		log.Printf("webhook: failed to mark purchase %s for payment intent %s: %v", to, paymentIntentID, err)
		return
	}
	if purchase == nil {
		log.Printf("webhook: no purchase found for payment intent %s", paymentIntentID)
	}
}

// recordFulfillment materializes the permanent ownership record. The unique
// constraint dedupes concurrent redelivery; anything that goes wrong here is
// logged and never rolls back the completed Purchase. The counter and feed
// updates are fire-and-forget.
func (p *PaymentService) recordFulfillment(ctx context.Context, purchase *db_models.Purchase) {
	record := &db_models.PostPurchase{
		UserID:     purchase.UserID,
		PostID:     purchase.PostID,
		PurchaseID: &purchase.ID,
		Amount:     purchase.Amount,
		Currency:   purchase.Currency,
	}

	err := p.postPurchases.Insert(ctx, record)
	if err == utils.ErrAlreadyPurchased {
		return
	}
	if err != nil {
		log.Printf("fulfillment: failed to record post purchase for purchase %d: %v", purchase.ID, err)
		return
	}

	if err := p.trackingRepo.IncrementBoughtPosts(ctx, purchase.UserID); err != nil {
		log.Printf("fulfillment: failed to bump bought posts count for user %d: %v", purchase.UserID, err)
	}
	if err := p.caregiverRepo.AppendPurchasedContent(ctx, purchase.UserID, purchase.PostID); err != nil {
		log.Printf("fulfillment: failed to append purchased content for user %d: %v", purchase.UserID, err)
	}
}

// EnsureCustomer returns the user's processor customer handle, creating and
// persisting one on first use.
func (p *PaymentService) EnsureCustomer(ctx context.Context, userID int64, email string) (*response_models.StripeCustomerResponse, error) {
	user, err := p.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if user.StripeCustomerID != nil && *user.StripeCustomerID != "" {
		return &response_models.StripeCustomerResponse{
			UserID:           user.UserID,
			StripeCustomerID: *user.StripeCustomerID,
			Email:            user.Email,
		}, nil
	}

	if email == "" {
		email = user.Email
	}
	customerID, err := p.provider.CreateCustomer(ctx, email, map[string]string{
		"user_id": strconv.FormatInt(userID, 10),
	})
	if err != nil {
		return nil, err
	}

	if err := p.userRepo.UpdateStripeCustomerID(ctx, userID, customerID); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.StripeCustomerResponse{
		UserID:           user.UserID,
		StripeCustomerID: customerID,
		Email:            user.Email,
	}, nil
}

func (p *PaymentService) GetCustomer(ctx context.Context, userID int64) (*response_models.StripeCustomerResponse, error) {
	user, err := p.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	if user.StripeCustomerID == nil || *user.StripeCustomerID == "" {
		return nil, utils.ErrCustomerNotFound
	}

	return &response_models.StripeCustomerResponse{
		UserID:           user.UserID,
		StripeCustomerID: *user.StripeCustomerID,
		Email:            user.Email,
	}, nil
}

func purchaseResponse(purchase *db_models.Purchase) *response_models.PurchaseResponse {
	return &response_models.PurchaseResponse{
		ID:                    purchase.ID,
		UserID:                purchase.UserID,
		PostID:                purchase.PostID,
		StripeSessionID:       purchase.StripeSessionID,
		StripePaymentIntentID: purchase.StripePaymentIntentID,
		Amount:                purchase.Amount,
		Currency:              purchase.Currency,
		Status:                string(purchase.Status),
		CreatedAt:             purchase.CreatedAt,
		UpdatedAt:             purchase.UpdatedAt,
	}
}
