package clinician_fx

import (
	"go.uber.org/fx"
	"neurobridge/internal/api/controllers"
	"neurobridge/internal/repositories"
	"neurobridge/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionService, provideClinicianService, provideClinicianController)

func provideSubscriptionService(
	caregiverRepo repositories.CaregiverRepository,
	clinicianRepo repositories.ClinicianRepository,
	userRepo repositories.UserRepository,
) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(caregiverRepo, clinicianRepo, userRepo)
}

func provideClinicianService(clinicianRepo repositories.ClinicianRepository) services.ClinicianServiceInterface {
	return services.NewClinicianService(clinicianRepo)
}

func provideClinicianController(
	subscriptionService services.SubscriptionServiceInterface,
	clinicianService services.ClinicianServiceInterface,
) *controllers.ClinicianController {
	return controllers.NewClinicianController(subscriptionService, clinicianService)
}
