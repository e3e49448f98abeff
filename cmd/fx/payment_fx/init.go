package payment_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"neurobridge/internal/api/controllers"
	"neurobridge/internal/payments"
	"neurobridge/internal/repositories"
	"neurobridge/internal/services"
)

var Module = fx.Provide(
	providePurchaseRepo, providePostPurchaseRepo,
	provideStripeProvider, providePaymentService, provideAccessService,
	providePostPurchaseService,
	providePaymentController, providePostPurchaseController,
)

func providePurchaseRepo(db *gorm.DB) repositories.PurchaseRepository {
	return repositories.NewPurchaseRepository(db)
}

func providePostPurchaseRepo(db *gorm.DB) repositories.PostPurchaseRepository {
	return repositories.NewPostPurchaseRepository(db)
}

func provideStripeProvider() payments.Provider {
	provider, err := payments.NewStripeProvider(payments.StripeConfig{
		SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
	})
	if err != nil {
		log.Fatalf("Error initializing payment provider: %v", err)
	}
	return provider
}

func providePaymentService(
	provider payments.Provider,
	purchaseRepo repositories.PurchaseRepository,
	postPurchases repositories.PostPurchaseRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	trackingRepo repositories.TrackingRepository,
	caregiverRepo repositories.CaregiverRepository,
) services.PaymentServiceInterface {
	cfg := services.PaymentConfig{
		SuccessURL: os.Getenv("CHECKOUT_SUCCESS_URL"),
		CancelURL:  os.Getenv("CHECKOUT_CANCEL_URL"),
	}
	return services.NewPaymentService(provider, purchaseRepo, postPurchases, postRepo, userRepo, trackingRepo, caregiverRepo, cfg)
}

func provideAccessService(
	postRepo repositories.PostRepository,
	postPurchases repositories.PostPurchaseRepository,
	purchaseRepo repositories.PurchaseRepository,
) services.AccessServiceInterface {
	return services.NewAccessService(postRepo, postPurchases, purchaseRepo)
}

func providePostPurchaseService(
	postPurchases repositories.PostPurchaseRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
) services.PostPurchaseServiceInterface {
	return services.NewPostPurchaseService(postPurchases, postRepo, userRepo)
}

func providePaymentController(paymentService services.PaymentServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}

func providePostPurchaseController(postPurchaseService services.PostPurchaseServiceInterface) *controllers.PostPurchaseController {
	return controllers.NewPostPurchaseController(postPurchaseService)
}
