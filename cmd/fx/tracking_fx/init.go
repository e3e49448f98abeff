package tracking_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"neurobridge/internal/api/controllers"
	"neurobridge/internal/repositories"
	"neurobridge/internal/services"
)

var Module = fx.Provide(
	provideTrackingRepo, provideTrackingService, provideTrackingController)

func provideTrackingRepo(db *gorm.DB) repositories.TrackingRepository {
	return repositories.NewTrackingRepository(db)
}

func provideTrackingService(
	trackingRepo repositories.TrackingRepository,
	userRepo repositories.UserRepository,
) services.TrackingServiceInterface {
	return services.NewTrackingService(trackingRepo, userRepo)
}

func provideTrackingController(trackingService services.TrackingServiceInterface) *controllers.TrackingController {
	return controllers.NewTrackingController(trackingService)
}
