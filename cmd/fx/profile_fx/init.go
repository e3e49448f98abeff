package profile_fx

import (
	"go.uber.org/fx"
	"neurobridge/internal/api/controllers"
	"neurobridge/internal/repositories"
	"neurobridge/internal/services"
)

var Module = fx.Provide(
	provideProfileService, provideProfileController)

func provideProfileService(
	userRepo repositories.UserRepository,
	caregiverRepo repositories.CaregiverRepository,
	clinicianRepo repositories.ClinicianRepository,
	trackingRepo repositories.TrackingRepository,
) services.ProfileServiceInterface {
	return services.NewProfileService(userRepo, caregiverRepo, clinicianRepo, trackingRepo)
}

func provideProfileController(profileService services.ProfileServiceInterface) *controllers.ProfileController {
	return controllers.NewProfileController(profileService)
}
