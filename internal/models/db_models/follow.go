package db_models

import (
	"github.com/google/uuid"
)

// Follow is a directed edge from a user to a trainer. The composite
// unique index is the only duplicate guard under racing submits.
type Follow struct {
	BaseModel
	FollowerID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_follower_trainer"`
	TrainerID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_follower_trainer"`

	Trainer *Account `gorm:"foreignKey:TrainerID"`
}
