package subscription_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitmarket/internal/repositories"
	"fitmarket/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionService, provideSubscriptionRepo)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideSubscriptionService(subscriptionRepo repositories.SubscriptionRepository, planRepo repositories.PlanRepository) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subscriptionRepo, planRepo)
}
