package response_models

import (
	"github.com/google/uuid"

	"fitmarket/internal/models/db_models"
)

// DescriptionPlaceholder is returned in place of the long-form
// description for viewers without a subscription to the plan.
const DescriptionPlaceholder = "Subscribe to unlock the full plan description."

type PlanResponse struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Price        float64         `json:"price"`
	DurationDays int             `json:"duration"`
	TrainerID    uuid.UUID       `json:"trainer_id"`
	Trainer      *TrainerSummary `json:"trainer,omitempty"`
	Subscribed   bool            `json:"subscribed"`
	CreatedAt    int64           `json:"created_at"`
	UpdatedAt    int64           `json:"updated_at"`
}

// NewPlanResponse renders a plan for a viewer. The description is
// redacted unless subscribed is true; every other field is public.
// A missing trainer association leaves the trainer field absent.
func NewPlanResponse(p *db_models.Plan, subscribed bool) PlanResponse {
	description := DescriptionPlaceholder
	if subscribed {
		description = p.Description
	}
	return PlanResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  description,
		Price:        p.Price,
		DurationDays: p.DurationDays,
		TrainerID:    p.TrainerID,
		Trainer:      NewTrainerSummary(p.Trainer),
		Subscribed:   subscribed,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// NewOwnedPlanResponse renders a plan for its owning trainer's
// management view, always with the full description.
func NewOwnedPlanResponse(p *db_models.Plan) PlanResponse {
	r := NewPlanResponse(p, true)
	r.Subscribed = false
	return r
}
