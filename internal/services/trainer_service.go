package services

import (
	"context"

	"github.com/google/uuid"

	"fitmarket/internal/authz"
	"fitmarket/internal/models/db_models"
	"fitmarket/internal/models/response_models"
	"fitmarket/internal/repositories"
	"fitmarket/pkg/utils"
)

type TrainerProfileResponse struct {
	Trainer response_models.TrainerSummary `json:"trainer"`
	Plans   []response_models.PlanResponse `json:"plans"`
}

type TrainerServiceInterface interface {
	ListTrainers(ctx context.Context, search string) ([]response_models.TrainerSummary, error)
	GetTrainerProfile(ctx context.Context, viewer authz.Actor, trainerID uuid.UUID) (TrainerProfileResponse, error)
}

type TrainerService struct {
	accountRepo      repositories.AccountRepository
	planRepo         repositories.PlanRepository
	subscriptionRepo repositories.SubscriptionRepository
}

func NewTrainerService(accountRepo repositories.AccountRepository, planRepo repositories.PlanRepository, subscriptionRepo repositories.SubscriptionRepository) TrainerServiceInterface {
	return &TrainerService{
		accountRepo:      accountRepo,
		planRepo:         planRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

func (t *TrainerService) ListTrainers(ctx context.Context, search string) ([]response_models.TrainerSummary, error) {
	trainers, err := t.accountRepo.ListTrainers(ctx, search)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.TrainerSummary, 0, len(trainers))
	for i := range trainers {
		result = append(result, *response_models.NewTrainerSummary(&trainers[i]))
	}

	return result, nil
}

// GetTrainerProfile is the public trainer page: profile plus their
// plans, descriptions gated against the viewer's grants.
func (t *TrainerService) GetTrainerProfile(ctx context.Context, viewer authz.Actor, trainerID uuid.UUID) (TrainerProfileResponse, error) {
	trainer, err := t.accountRepo.FindByID(ctx, trainerID)
	if err != nil {
		return TrainerProfileResponse{}, utils.ErrDatabaseError
	}
	if trainer == nil || trainer.Role != db_models.RoleTrainer {
		return TrainerProfileResponse{}, utils.ErrAccountNotFound
	}

	plans, err := t.planRepo.ListByTrainer(ctx, trainerID)
	if err != nil {
		return TrainerProfileResponse{}, utils.ErrDatabaseError
	}

	subscribed := make(map[uuid.UUID]bool)
	if viewer.Authenticated && viewer.Role == db_models.RoleUser {
		planIDs, err := t.subscriptionRepo.ListPlanIDs(ctx, viewer.ID)
		if err != nil {
			return TrainerProfileResponse{}, utils.ErrDatabaseError
		}
		for _, planID := range planIDs {
			subscribed[planID] = true
		}
	}

	summary := response_models.NewTrainerSummary(trainer)
	rendered := make([]response_models.PlanResponse, 0, len(plans))
	for i := range plans {
		plan := response_models.NewPlanResponse(&plans[i], subscribed[plans[i].ID])
		plan.Trainer = summary
		rendered = append(rendered, plan)
	}

	return TrainerProfileResponse{
		Trainer: *summary,
		Plans:   rendered,
	}, nil
}
