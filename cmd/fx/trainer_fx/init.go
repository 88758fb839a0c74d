package trainer_fx

import (
	"go.uber.org/fx"

	"fitmarket/internal/repositories"
	"fitmarket/internal/services"
)

var Module = fx.Provide(
	provideTrainerService)

func provideTrainerService(accountRepo repositories.AccountRepository, planRepo repositories.PlanRepository, subscriptionRepo repositories.SubscriptionRepository) services.TrainerServiceInterface {
	return services.NewTrainerService(accountRepo, planRepo, subscriptionRepo)
}
