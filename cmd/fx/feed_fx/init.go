package feed_fx

import (
	"go.uber.org/fx"

	"fitmarket/internal/repositories"
	"fitmarket/internal/services"
)

var Module = fx.Provide(
	provideFeedService)

func provideFeedService(followRepo repositories.FollowRepository, planRepo repositories.PlanRepository, subscriptionRepo repositories.SubscriptionRepository) services.FeedServiceInterface {
	return services.NewFeedService(followRepo, planRepo, subscriptionRepo)
}
