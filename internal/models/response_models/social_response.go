package response_models

import (
	"github.com/google/uuid"

	"fitmarket/internal/models/db_models"
)

type FollowResponse struct {
	ID         uuid.UUID `json:"id"`
	FollowerID uuid.UUID `json:"follower_id"`
	TrainerID  uuid.UUID `json:"trainer_id"`
	FollowedAt int64     `json:"followed_at"`
}

func NewFollowResponse(f *db_models.Follow) FollowResponse {
	return FollowResponse{
		ID:         f.ID,
		FollowerID: f.FollowerID,
		TrainerID:  f.TrainerID,
		FollowedAt: f.CreatedAt,
	}
}

type SubscriptionResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	PlanID       uuid.UUID `json:"plan_id"`
	SubscribedAt int64     `json:"subscribed_at"`
}

func NewSubscriptionResponse(s *db_models.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:           s.ID,
		UserID:       s.UserID,
		PlanID:       s.PlanID,
		SubscribedAt: s.CreatedAt,
	}
}
