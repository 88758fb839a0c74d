package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"fitmarket/cmd/fx/account_fx"
	"fitmarket/cmd/fx/controllers_fx"
	"fitmarket/cmd/fx/db_fx"
	"fitmarket/cmd/fx/feed_fx"
	"fitmarket/cmd/fx/follow_fx"
	"fitmarket/cmd/fx/plan_fx"
	"fitmarket/cmd/fx/subscription_fx"
	"fitmarket/cmd/fx/tokendeny_fx"
	"fitmarket/cmd/fx/trainer_fx"
	"fitmarket/internal/api/controllers"
	"fitmarket/internal/models/db_models"
	"fitmarket/pkg/middleware"
	"fitmarket/pkg/tokendeny"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		db_fx.Module,
		tokendeny_fx.Module,
		account_fx.Module,
		plan_fx.Module,
		follow_fx.Module,
		subscription_fx.Module,
		feed_fx.Module,
		trainer_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	denylist tokendeny.Denylist,
	accountController *controllers.AccountController,
	planController *controllers.PlanController,
	trainerController *controllers.TrainerController,
	followController *controllers.FollowController,
	subscriptionController *controllers.SubscriptionController,
	feedController *controllers.FeedController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, denylist,
		accountController, planController, trainerController,
		followController, subscriptionController, feedController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	denylist tokendeny.Denylist,
	accountController *controllers.AccountController,
	planController *controllers.PlanController,
	trainerController *controllers.TrainerController,
	followController *controllers.FollowController,
	subscriptionController *controllers.SubscriptionController,
	feedController *controllers.FeedController) {

	auth := middleware.JWTAuthMiddleware(denylist)
	viewer := middleware.OptionalAuthMiddleware(denylist)
	trainerOnly := middleware.RoleMiddleware(db_models.RoleTrainer)
	userOnly := middleware.RoleMiddleware(db_models.RoleUser)

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/logout", auth, accountController.Logout)
	accounts.GET("/me", auth, accountController.Me)
	accounts.PUT("/me", auth, accountController.UpdateMe)

	plans := r.Group("/plans")
	plans.GET("", viewer, planController.Browse)
	plans.GET("/mine", auth, trainerOnly, planController.MyPlans)
	plans.GET("/:id", viewer, planController.GetByID)
	plans.POST("", auth, trainerOnly, planController.Create)
	plans.PUT("/:id", auth, trainerOnly, planController.Update)
	plans.DELETE("/:id", auth, trainerOnly, planController.Delete)

	trainers := r.Group("/trainers")
	trainers.GET("", trainerController.List)
	trainers.GET("/:id", viewer, trainerController.GetByID)

	follows := r.Group("/follows", auth, userOnly)
	follows.GET("", followController.ListFollowed)
	follows.POST("/:trainerId", followController.Follow)
	follows.DELETE("/:trainerId", followController.Unfollow)

	subscriptions := r.Group("/subscriptions", auth, userOnly)
	subscriptions.GET("", subscriptionController.ListMine)
	subscriptions.POST("/:planId", subscriptionController.Subscribe)
	subscriptions.DELETE("/:planId", subscriptionController.Unsubscribe)

	r.GET("/feed", auth, userOnly, feedController.GetFeed)
}
