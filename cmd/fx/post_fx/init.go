package post_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"neurobridge/internal/api/controllers"
	"neurobridge/internal/payments"
	"neurobridge/internal/repositories"
	"neurobridge/internal/services"
)

var Module = fx.Provide(
	providePostRepo, providePostService, providePostController)

func providePostRepo(db *gorm.DB) repositories.PostRepository {
	return repositories.NewPostRepository(db)
}

func providePostService(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	provider payments.Provider,
) services.PostServiceInterface {
	return services.NewPostService(postRepo, userRepo, provider)
}

func providePostController(
	postService services.PostServiceInterface,
	accessService services.AccessServiceInterface,
	trackingService services.TrackingServiceInterface,
) *controllers.PostController {
	return controllers.NewPostController(postService, accessService, trackingService)
}
