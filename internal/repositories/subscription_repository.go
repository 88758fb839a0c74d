package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitmarket/internal/infra"
	"fitmarket/internal/models/db_models"
)

type SubscriptionRepository interface {
	Upsert(ctx context.Context, userID, planID uuid.UUID) (*db_models.Subscription, error)
	Delete(ctx context.Context, userID, planID uuid.UUID) error
	Exists(ctx context.Context, userID, planID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error)
	ListPlanIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Upsert mirrors the follow upsert: racing duplicate grants collapse
// onto the one surviving row.
func (s *subscriptionRepository) Upsert(ctx context.Context, userID, planID uuid.UUID) (*db_models.Subscription, error) {
	subscription := &db_models.Subscription{UserID: userID, PlanID: planID}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "plan_id"}},
			DoNothing: true,
		}).
		Create(subscription).Error

	if err != nil && !infra.IsUniqueViolation(err) {
		return nil, err
	}

	var existing db_models.Subscription
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND plan_id = ?", userID, planID).
		First(&existing).Error
	if err != nil {
		return nil, err
	}

	return &existing, nil
}

// Delete is a no-op when no grant exists.
func (s *subscriptionRepository) Delete(ctx context.Context, userID, planID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND plan_id = ?", userID, planID).
		Delete(&db_models.Subscription{}).Error
}

func (s *subscriptionRepository) Exists(ctx context.Context, userID, planID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("user_id = ? AND plan_id = ?", userID, planID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (s *subscriptionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error) {
	var subscriptions []db_models.Subscription
	err := s.db.WithContext(ctx).
		Preload("Plan").
		Preload("Plan.Trainer").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subscriptions).Error

	if err != nil {
		return nil, err
	}

	return subscriptions, nil
}

func (s *subscriptionRepository) ListPlanIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var planIDs []uuid.UUID
	err := s.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("user_id = ?", userID).
		Pluck("plan_id", &planIDs).Error

	if err != nil {
		return nil, err
	}

	return planIDs, nil
}
