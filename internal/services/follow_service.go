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

type FollowServiceInterface interface {
	Follow(ctx context.Context, actor authz.Actor, trainerID uuid.UUID) (response_models.FollowResponse, error)
	Unfollow(ctx context.Context, actor authz.Actor, trainerID uuid.UUID) error
	ListFollowedTrainers(ctx context.Context, actor authz.Actor) ([]response_models.TrainerSummary, error)
}

type FollowService struct {
	followRepo  repositories.FollowRepository
	accountRepo repositories.AccountRepository
}

func NewFollowService(followRepo repositories.FollowRepository, accountRepo repositories.AccountRepository) FollowServiceInterface {
	return &FollowService{
		followRepo:  followRepo,
		accountRepo: accountRepo,
	}
}

// Follow is idempotent: following an already-followed trainer returns
// the existing edge.
func (f *FollowService) Follow(ctx context.Context, actor authz.Actor, trainerID uuid.UUID) (response_models.FollowResponse, error) {

	if err := authz.Authorize(actor, authz.ActionFollow, authz.Target{OwnerID: trainerID}); err != nil {
		return response_models.FollowResponse{}, err
	}

	trainer, err := f.accountRepo.FindByID(ctx, trainerID)
	if err != nil {
		return response_models.FollowResponse{}, utils.ErrDatabaseError
	}
	if trainer == nil {
		return response_models.FollowResponse{}, utils.ErrAccountNotFound
	}
	if trainer.Role != db_models.RoleTrainer {
		return response_models.FollowResponse{}, utils.ErrInvalidTarget
	}

	follow, err := f.followRepo.Upsert(ctx, actor.ID, trainerID)
	if err != nil {
		return response_models.FollowResponse{}, utils.ErrDatabaseError
	}

	return response_models.NewFollowResponse(follow), nil
}

// Unfollow of a trainer never followed is a success.
func (f *FollowService) Unfollow(ctx context.Context, actor authz.Actor, trainerID uuid.UUID) error {

	if err := authz.Authorize(actor, authz.ActionFollow, authz.Target{OwnerID: trainerID}); err != nil {
		return err
	}

	if err := f.followRepo.Delete(ctx, actor.ID, trainerID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (f *FollowService) ListFollowedTrainers(ctx context.Context, actor authz.Actor) ([]response_models.TrainerSummary, error) {

	if !actor.Authenticated {
		return nil, utils.ErrUnauthenticated
	}

	follows, err := f.followRepo.ListByFollower(ctx, actor.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	trainers := make([]response_models.TrainerSummary, 0, len(follows))
	for i := range follows {
		// A follow whose trainer row vanished is skipped, not an error.
		if summary := response_models.NewTrainerSummary(follows[i].Trainer); summary != nil {
			trainers = append(trainers, *summary)
		}
	}

	return trainers, nil
}
