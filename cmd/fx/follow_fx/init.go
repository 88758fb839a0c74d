package follow_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitmarket/internal/repositories"
	"fitmarket/internal/services"
)

var Module = fx.Provide(
	provideFollowService, provideFollowRepo)

func provideFollowRepo(db *gorm.DB) repositories.FollowRepository {
	return repositories.NewFollowRepository(db)
}

func provideFollowService(followRepo repositories.FollowRepository, accountRepo repositories.AccountRepository) services.FollowServiceInterface {
	return services.NewFollowService(followRepo, accountRepo)
}
