package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"neurobridge/cmd/fx/account_fx"
	"neurobridge/cmd/fx/clinician_fx"
	"neurobridge/cmd/fx/collection_fx"
	"neurobridge/cmd/fx/db_fx"
	"neurobridge/cmd/fx/payment_fx"
	"neurobridge/cmd/fx/post_fx"
	"neurobridge/cmd/fx/profile_fx"
	"neurobridge/cmd/fx/tracking_fx"
	"neurobridge/internal/api/controllers"
	"neurobridge/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		tracking_fx.Module,
		post_fx.Module,
		profile_fx.Module,
		clinician_fx.Module,
		collection_fx.Module,
		payment_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	postController *controllers.PostController,
	profileController *controllers.ProfileController,
	clinicianController *controllers.ClinicianController,
	collectionController *controllers.CollectionController,
	paymentController *controllers.PaymentController,
	postPurchaseController *controllers.PostPurchaseController,
	trackingController *controllers.TrackingController,
) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		authController, postController, profileController,
		clinicianController, collectionController,
		paymentController, postPurchaseController, trackingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	postController *controllers.PostController,
	profileController *controllers.ProfileController,
	clinicianController *controllers.ClinicianController,
	collectionController *controllers.CollectionController,
	paymentController *controllers.PaymentController,
	postPurchaseController *controllers.PostPurchaseController,
	trackingController *controllers.TrackingController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	authGroup.POST("/signup/caregiver", authController.SignupCaregiver)
	authGroup.POST("/signup/clinician", authController.SignupClinician)
	authGroup.POST("/login", authController.Login)

	postGroup := r.Group("/posts")
	postGroup.Use(middleware.JWTAuthMiddleware())
	postGroup.POST("", postController.CreatePost)
	postGroup.GET("", postController.ListPosts)
	postGroup.GET("/:post_id", postController.GetPost)
	postGroup.GET("/:post_id/access", postController.CheckAccess)
	postGroup.GET("/user/:user_id", postController.ListUserPosts)

	profileGroup := r.Group("/profiles")
	profileGroup.Use(middleware.JWTAuthMiddleware())
	profileGroup.PUT("", profileController.UpdateProfile)
	profileGroup.GET("/content-preferences", profileController.GetContentPreferences)
	profileGroup.PUT("/content-preferences", profileController.UpdateContentPreferences)
	profileGroup.GET("/:user_id", profileController.GetProfile)

	clinicianGroup := r.Group("/clinicians")
	clinicianGroup.Use(middleware.JWTAuthMiddleware())
	clinicianGroup.POST("/subscribe", clinicianController.Subscribe)
	clinicianGroup.DELETE("/unsubscribe", clinicianController.Unsubscribe)
	clinicianGroup.GET("", clinicianController.ListClinicians)
	clinicianGroup.GET("/:user_id", clinicianController.GetClinician)
	clinicianGroup.GET("/except/:user_id", clinicianController.ListExcept)
	clinicianGroup.GET("/subscribed/:caregiver_id", clinicianController.ListSubscribed)
	clinicianGroup.GET("/unsubscribed/:caregiver_id", clinicianController.ListUnsubscribed)

	collectionGroup := r.Group("/collections")
	collectionGroup.Use(middleware.JWTAuthMiddleware())
	collectionGroup.POST("", collectionController.CreateCollection)
	collectionGroup.GET("", collectionController.ListCollections)
	collectionGroup.GET("/:collection_id", collectionController.GetCollection)
	collectionGroup.GET("/user/:user_id", collectionController.ListUserCollections)

	paymentGroup := r.Group("/payments")
	// The webhook authenticates itself via its signature, not a bearer token.
	paymentGroup.POST("/webhook", paymentController.HandleWebhook)
	authedPayments := paymentGroup.Group("")
	authedPayments.Use(middleware.JWTAuthMiddleware())
	authedPayments.POST("/create-checkout", paymentController.CreateCheckout)
	authedPayments.POST("/verify", paymentController.VerifyPayment)
	authedPayments.POST("/customers", paymentController.CreateCustomer)
	authedPayments.GET("/customers/:user_id", paymentController.GetCustomer)

	purchaseGroup := r.Group("/post-purchases")
	purchaseGroup.Use(middleware.JWTAuthMiddleware())
	purchaseGroup.GET("", postPurchaseController.ListAllPurchases)
	purchaseGroup.GET("/user/:user_id", postPurchaseController.ListUserPurchases)
	purchaseGroup.GET("/user-posts/:user_id", postPurchaseController.ListPurchasedPosts)
	purchaseGroup.GET("/post/:post_id", postPurchaseController.ListPostPurchases)
	purchaseGroup.GET("/post/:post_id/stats", postPurchaseController.PostStats)
	purchaseGroup.GET("/check/:user_id/:post_id", postPurchaseController.CheckPurchase)

	trackingGroup := r.Group("/tracking")
	trackingGroup.Use(middleware.JWTAuthMiddleware())
	trackingGroup.GET("/:user_id", trackingController.GetTracking)
	trackingGroup.POST("/:user_id/login", trackingController.RecordLogin)
	trackingGroup.POST("/:user_id/view-post", trackingController.RecordPostView)
	trackingGroup.POST("/:user_id/buy-post", trackingController.RecordPostPurchase)
	trackingGroup.POST("/:user_id/view-profile", trackingController.RecordProfileView)
}
