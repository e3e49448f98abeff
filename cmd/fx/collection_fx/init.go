package collection_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"neurobridge/internal/api/controllers"
	"neurobridge/internal/repositories"
	"neurobridge/internal/services"
)

var Module = fx.Provide(
	provideCollectionRepo, provideCollectionService, provideCollectionController)

func provideCollectionRepo(db *gorm.DB) repositories.CollectionRepository {
	return repositories.NewCollectionRepository(db)
}

func provideCollectionService(
	collectionRepo repositories.CollectionRepository,
	userRepo repositories.UserRepository,
) services.CollectionServiceInterface {
	return services.NewCollectionService(collectionRepo, userRepo)
}

func provideCollectionController(collectionService services.CollectionServiceInterface) *controllers.CollectionController {
	return controllers.NewCollectionController(collectionService)
}
