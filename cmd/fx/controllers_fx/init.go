package controllers_fx

import (
	"go.uber.org/fx"

	"fitmarket/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewTrainerController),
	fx.Provide(controllers.NewFollowController),
	fx.Provide(controllers.NewSubscriptionController),
	fx.Provide(controllers.NewFeedController))
