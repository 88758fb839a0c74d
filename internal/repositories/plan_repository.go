package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitmarket/internal/infra"
	"fitmarket/internal/models/db_models"
)

type PlanRepository interface {
	Insert(ctx context.Context, plan *db_models.Plan) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Plan, error)
	FindByIDWithTrainer(ctx context.Context, id uuid.UUID) (*db_models.Plan, error)
	ListAll(ctx context.Context, search string) ([]db_models.Plan, error)
	ListByTrainer(ctx context.Context, trainerID uuid.UUID) ([]db_models.Plan, error)
	ListByTrainerIDs(ctx context.Context, trainerIDs []uuid.UUID) ([]db_models.Plan, error)
	Update(ctx context.Context, plan *db_models.Plan) error
	DeleteWithSubscriptions(ctx context.Context, plan *db_models.Plan) error
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (p *planRepository) Insert(ctx context.Context, plan *db_models.Plan) error {
	return p.db.WithContext(ctx).Create(plan).Error
}

func (p *planRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := p.db.WithContext(ctx).First(&plan, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (p *planRepository) FindByIDWithTrainer(ctx context.Context, id uuid.UUID) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := p.db.WithContext(ctx).Preload("Trainer").First(&plan, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

// ListAll joins the owning trainer server-side. A plan whose trainer
// row is missing still comes back, with the association left nil.
func (p *planRepository) ListAll(ctx context.Context, search string) ([]db_models.Plan, error) {
	query := p.db.WithContext(ctx).
		Model(&db_models.Plan{}).
		Preload("Trainer").
		Order("plans.created_at DESC")

	if search != "" {
		pattern := "%" + search + "%"
		query = query.
			Joins("LEFT JOIN accounts ON accounts.id = plans.trainer_id").
			Where("plans.title ILIKE ? OR accounts.name ILIKE ?", pattern, pattern)
	}

	var plans []db_models.Plan
	if err := query.Find(&plans).Error; err != nil {
		return nil, err
	}

	return plans, nil
}

func (p *planRepository) ListByTrainer(ctx context.Context, trainerID uuid.UUID) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	err := p.db.WithContext(ctx).
		Where("trainer_id = ?", trainerID).
		Order("created_at DESC").
		Find(&plans).Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (p *planRepository) ListByTrainerIDs(ctx context.Context, trainerIDs []uuid.UUID) ([]db_models.Plan, error) {
	if len(trainerIDs) == 0 {
		return nil, nil
	}

	var plans []db_models.Plan
	err := p.db.WithContext(ctx).
		Preload("Trainer").
		Where("trainer_id IN ?", trainerIDs).
		Order("created_at DESC").
		Find(&plans).Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (p *planRepository) Update(ctx context.Context, plan *db_models.Plan) error {
	return p.db.WithContext(ctx).Save(plan).Error
}

// DeleteWithSubscriptions removes the plan and its subscription rows
// in one transaction so no orphaned grants survive the delete.
func (p *planRepository) DeleteWithSubscriptions(ctx context.Context, plan *db_models.Plan) (err error) {
	tx := infra.StartTransaction(p.db.WithContext(ctx))
	if tx.Error != nil {
		return tx.Error
	}
	defer func() { infra.ReleaseTransaction(tx, err) }()

	if err = tx.Where("plan_id = ?", plan.ID).Delete(&db_models.Subscription{}).Error; err != nil {
		return err
	}

	err = tx.Delete(plan).Error
	return err
}
