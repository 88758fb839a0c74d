package services

import (
	"context"

	"github.com/google/uuid"

	"fitmarket/internal/authz"
	"fitmarket/internal/models/response_models"
	"fitmarket/internal/repositories"
	"fitmarket/pkg/utils"
)

type SubscriptionServiceInterface interface {
	Subscribe(ctx context.Context, actor authz.Actor, planID uuid.UUID) (response_models.SubscriptionResponse, error)
	Unsubscribe(ctx context.Context, actor authz.Actor, planID uuid.UUID) error
	ListMySubscriptions(ctx context.Context, actor authz.Actor) ([]response_models.PlanResponse, error)
	IsSubscribed(ctx context.Context, userID, planID uuid.UUID) (bool, error)
}

type SubscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	planRepo         repositories.PlanRepository
}

func NewSubscriptionService(subscriptionRepo repositories.SubscriptionRepository, planRepo repositories.PlanRepository) SubscriptionServiceInterface {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
	}
}

// Subscribe is an idempotent grant: a duplicate subscribe returns the
// existing row with exactly one logical grant behind it.
func (s *SubscriptionService) Subscribe(ctx context.Context, actor authz.Actor, planID uuid.UUID) (response_models.SubscriptionResponse, error) {

	// Authentication and role are decided before the plan is loaded.
	if err := authz.Authorize(actor, authz.ActionSubscribe, authz.Target{}); err != nil {
		return response_models.SubscriptionResponse{}, err
	}

	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return response_models.SubscriptionResponse{}, utils.ErrDatabaseError
	}
	if plan == nil {
		return response_models.SubscriptionResponse{}, utils.ErrRecordNotFound
	}

	if err := authz.Authorize(actor, authz.ActionSubscribe, authz.Target{OwnerID: plan.TrainerID}); err != nil {
		return response_models.SubscriptionResponse{}, err
	}

	subscription, err := s.subscriptionRepo.Upsert(ctx, actor.ID, planID)
	if err != nil {
		return response_models.SubscriptionResponse{}, utils.ErrDatabaseError
	}

	return response_models.NewSubscriptionResponse(subscription), nil
}

// Unsubscribe of an absent grant is a success.
func (s *SubscriptionService) Unsubscribe(ctx context.Context, actor authz.Actor, planID uuid.UUID) error {

	if err := authz.Authorize(actor, authz.ActionSubscribe, authz.Target{}); err != nil {
		return err
	}

	if err := s.subscriptionRepo.Delete(ctx, actor.ID, planID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

// ListMySubscriptions returns subscribed plans with full descriptions;
// holding the grant is exactly the condition the gate checks.
func (s *SubscriptionService) ListMySubscriptions(ctx context.Context, actor authz.Actor) ([]response_models.PlanResponse, error) {

	if !actor.Authenticated {
		return nil, utils.ErrUnauthenticated
	}

	subscriptions, err := s.subscriptionRepo.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	plans := make([]response_models.PlanResponse, 0, len(subscriptions))
	for i := range subscriptions {
		// A grant whose plan was deleted out from under it is skipped.
		if subscriptions[i].Plan == nil {
			continue
		}
		plans = append(plans, response_models.NewPlanResponse(subscriptions[i].Plan, true))
	}

	return plans, nil
}

func (s *SubscriptionService) IsSubscribed(ctx context.Context, userID, planID uuid.UUID) (bool, error) {
	subscribed, err := s.subscriptionRepo.Exists(ctx, userID, planID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return subscribed, nil
}
