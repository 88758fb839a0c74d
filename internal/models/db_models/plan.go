package db_models

import (
	"github.com/google/uuid"
)

type Plan struct {
	BaseModel
	Title        string
	Description  string // long-form, only served to subscribers
	Price        float64
	DurationDays int
	TrainerID    uuid.UUID `gorm:"type:uuid;index"`

	Trainer *Account `gorm:"foreignKey:TrainerID"`
}
