package services

import (
	"context"

	"github.com/google/uuid"

	"fitmarket/internal/authz"
	"fitmarket/internal/models/db_models"
	"fitmarket/internal/models/request_models"
	"fitmarket/internal/models/response_models"
	"fitmarket/internal/repositories"
	"fitmarket/pkg/utils"
)

type PlanServiceInterface interface {
	CreatePlan(ctx context.Context, actor authz.Actor, request request_models.CreatePlanRequest) (response_models.PlanResponse, error)
	GetMyPlans(ctx context.Context, actor authz.Actor) ([]response_models.PlanResponse, error)
	UpdatePlan(ctx context.Context, actor authz.Actor, id uuid.UUID, request request_models.UpdatePlanRequest) (response_models.PlanResponse, error)
	DeletePlan(ctx context.Context, actor authz.Actor, id uuid.UUID) error
	BrowsePlans(ctx context.Context, viewer authz.Actor, search string) ([]response_models.PlanResponse, error)
	GetPlanForViewer(ctx context.Context, viewer authz.Actor, id uuid.UUID) (response_models.PlanResponse, error)
}

type PlanService struct {
	planRepo         repositories.PlanRepository
	subscriptionRepo repositories.SubscriptionRepository
}

func NewPlanService(planRepo repositories.PlanRepository, subscriptionRepo repositories.SubscriptionRepository) PlanServiceInterface {
	return &PlanService{
		planRepo:         planRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

func validatePlanFields(title string, price float64, durationDays int) error {
	if title == "" {
		return utils.ErrMissingTitle
	}
	if price < 0 {
		return utils.ErrInvalidPrice
	}
	if durationDays <= 0 {
		return utils.ErrInvalidDuration
	}
	return nil
}

func (p *PlanService) CreatePlan(ctx context.Context, actor authz.Actor, request request_models.CreatePlanRequest) (response_models.PlanResponse, error) {

	if err := authz.Authorize(actor, authz.ActionCreatePlan, authz.Target{}); err != nil {
		return response_models.PlanResponse{}, err
	}

	if err := validatePlanFields(request.Title, request.Price, request.DurationDays); err != nil {
		return response_models.PlanResponse{}, err
	}

	plan := &db_models.Plan{
		Title:        request.Title,
		Description:  request.Description,
		Price:        request.Price,
		DurationDays: request.DurationDays,
		TrainerID:    actor.ID,
	}

	if err := p.planRepo.Insert(ctx, plan); err != nil {
		return response_models.PlanResponse{}, utils.ErrDatabaseError
	}

	return response_models.NewOwnedPlanResponse(plan), nil
}

// GetMyPlans is the trainer's management view: own plans only, full
// descriptions, no subscription lookup.
func (p *PlanService) GetMyPlans(ctx context.Context, actor authz.Actor) ([]response_models.PlanResponse, error) {

	if err := authz.Authorize(actor, authz.ActionManagePlan, authz.Target{OwnerID: actor.ID}); err != nil {
		return nil, err
	}

	plans, err := p.planRepo.ListByTrainer(ctx, actor.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.PlanResponse, 0, len(plans))
	for i := range plans {
		result = append(result, response_models.NewOwnedPlanResponse(&plans[i]))
	}

	return result, nil
}

// UpdatePlan merges the patch over the stored plan: absent fields are
// preserved, never reset. A missing plan is NotFound before the
// ownership check runs.
func (p *PlanService) UpdatePlan(ctx context.Context, actor authz.Actor, id uuid.UUID, request request_models.UpdatePlanRequest) (response_models.PlanResponse, error) {

	plan, err := p.planRepo.FindByID(ctx, id)
	if err != nil {
		return response_models.PlanResponse{}, utils.ErrDatabaseError
	}
	if plan == nil {
		return response_models.PlanResponse{}, utils.ErrRecordNotFound
	}

	if err := authz.Authorize(actor, authz.ActionManagePlan, authz.Target{OwnerID: plan.TrainerID}); err != nil {
		return response_models.PlanResponse{}, err
	}

	if request.Title != nil {
		plan.Title = *request.Title
	}
	if request.Description != nil {
		plan.Description = *request.Description
	}
	if request.Price != nil {
		plan.Price = *request.Price
	}
	if request.DurationDays != nil {
		plan.DurationDays = *request.DurationDays
	}

	if err := validatePlanFields(plan.Title, plan.Price, plan.DurationDays); err != nil {
		return response_models.PlanResponse{}, err
	}

	if err := p.planRepo.Update(ctx, plan); err != nil {
		return response_models.PlanResponse{}, utils.ErrDatabaseError
	}

	return response_models.NewOwnedPlanResponse(plan), nil
}

func (p *PlanService) DeletePlan(ctx context.Context, actor authz.Actor, id uuid.UUID) error {

	plan, err := p.planRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil {
		return utils.ErrRecordNotFound
	}

	if err := authz.Authorize(actor, authz.ActionManagePlan, authz.Target{OwnerID: plan.TrainerID}); err != nil {
		return err
	}

	if err := p.planRepo.DeleteWithSubscriptions(ctx, plan); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

// BrowsePlans is open to everyone; only the description column is
// access-gated, per viewer, against their current grants.
func (p *PlanService) BrowsePlans(ctx context.Context, viewer authz.Actor, search string) ([]response_models.PlanResponse, error) {

	plans, err := p.planRepo.ListAll(ctx, search)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	subscribed, err := p.subscribedSet(ctx, viewer)
	if err != nil {
		return nil, err
	}

	result := make([]response_models.PlanResponse, 0, len(plans))
	for i := range plans {
		result = append(result, response_models.NewPlanResponse(&plans[i], subscribed[plans[i].ID]))
	}

	return result, nil
}

// GetPlanForViewer re-checks the subscription on every call; the
// decision is never cached because the grant can change between
// requests.
func (p *PlanService) GetPlanForViewer(ctx context.Context, viewer authz.Actor, id uuid.UUID) (response_models.PlanResponse, error) {

	plan, err := p.planRepo.FindByIDWithTrainer(ctx, id)
	if err != nil {
		return response_models.PlanResponse{}, utils.ErrDatabaseError
	}
	if plan == nil {
		return response_models.PlanResponse{}, utils.ErrRecordNotFound
	}

	isSubscribed := false
	if viewer.Authenticated {
		isSubscribed, err = p.subscriptionRepo.Exists(ctx, viewer.ID, plan.ID)
		if err != nil {
			return response_models.PlanResponse{}, utils.ErrDatabaseError
		}
	}

	return response_models.NewPlanResponse(plan, isSubscribed), nil
}

func (p *PlanService) subscribedSet(ctx context.Context, viewer authz.Actor) (map[uuid.UUID]bool, error) {
	if !viewer.Authenticated || viewer.Role != db_models.RoleUser {
		return nil, nil
	}

	planIDs, err := p.subscriptionRepo.ListPlanIDs(ctx, viewer.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	set := make(map[uuid.UUID]bool, len(planIDs))
	for _, planID := range planIDs {
		set[planID] = true
	}

	return set, nil
}
