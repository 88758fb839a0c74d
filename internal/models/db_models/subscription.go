package db_models

import (
	"github.com/google/uuid"
)

// Subscription grants one user access to one plan's full description.
// Presence of the row is the whole access-control fact.
type Subscription struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_plan"`
	PlanID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_plan"`

	Plan *Plan `gorm:"foreignKey:PlanID"`
}
