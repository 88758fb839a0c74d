package services

import (
	"context"

	"github.com/google/uuid"

	"fitmarket/internal/authz"
	"fitmarket/internal/models/response_models"
	"fitmarket/internal/repositories"
	"fitmarket/pkg/utils"
)

type FeedServiceInterface interface {
	BuildFeed(ctx context.Context, actor authz.Actor) ([]response_models.PlanResponse, error)
}

type FeedService struct {
	followRepo       repositories.FollowRepository
	planRepo         repositories.PlanRepository
	subscriptionRepo repositories.SubscriptionRepository
}

func NewFeedService(followRepo repositories.FollowRepository, planRepo repositories.PlanRepository, subscriptionRepo repositories.SubscriptionRepository) FeedServiceInterface {
	return &FeedService{
		followRepo:       followRepo,
		planRepo:         planRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// BuildFeed re-derives the feed from current follow and plan state on
// every call; nothing is materialized. An empty follow set returns an
// empty feed without touching the plans table.
func (f *FeedService) BuildFeed(ctx context.Context, actor authz.Actor) ([]response_models.PlanResponse, error) {

	if !actor.Authenticated {
		return nil, utils.ErrUnauthenticated
	}

	trainerIDs, err := f.followRepo.ListTrainerIDs(ctx, actor.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if len(trainerIDs) == 0 {
		return []response_models.PlanResponse{}, nil
	}

	plans, err := f.planRepo.ListByTrainerIDs(ctx, trainerIDs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	subscribedIDs, err := f.subscriptionRepo.ListPlanIDs(ctx, actor.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	subscribed := make(map[uuid.UUID]bool, len(subscribedIDs))
	for _, planID := range subscribedIDs {
		subscribed[planID] = true
	}

	feed := make([]response_models.PlanResponse, 0, len(plans))
	for i := range plans {
		feed = append(feed, response_models.NewPlanResponse(&plans[i], subscribed[plans[i].ID]))
	}

	return feed, nil
}
