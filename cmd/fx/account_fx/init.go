package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"neurobridge/internal/api/controllers"
	"neurobridge/internal/repositories"
	"neurobridge/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideCaregiverRepo, provideClinicianRepo,
	provideAccountService, provideAuthController)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideCaregiverRepo(db *gorm.DB) repositories.CaregiverRepository {
	return repositories.NewCaregiverRepository(db)
}

func provideClinicianRepo(db *gorm.DB) repositories.ClinicianRepository {
	return repositories.NewClinicianRepository(db)
}

func provideAccountService(
	userRepo repositories.UserRepository,
	caregiverRepo repositories.CaregiverRepository,
	clinicianRepo repositories.ClinicianRepository,
	trackingRepo repositories.TrackingRepository,
) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, caregiverRepo, clinicianRepo, trackingRepo)
}

func provideAuthController(accountService services.AccountServiceInterface) *controllers.AuthController {
	return controllers.NewAuthController(accountService)
}
