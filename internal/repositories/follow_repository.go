package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitmarket/internal/infra"
	"fitmarket/internal/models/db_models"
)

type FollowRepository interface {
	Upsert(ctx context.Context, followerID, trainerID uuid.UUID) (*db_models.Follow, error)
	Delete(ctx context.Context, followerID, trainerID uuid.UUID) error
	ListByFollower(ctx context.Context, followerID uuid.UUID) ([]db_models.Follow, error)
	ListTrainerIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Upsert inserts the edge if absent and returns the surviving row
// either way, so a duplicate follow is a success, not a 23505.
func (f *followRepository) Upsert(ctx context.Context, followerID, trainerID uuid.UUID) (*db_models.Follow, error) {
	follow := &db_models.Follow{FollowerID: followerID, TrainerID: trainerID}
	err := f.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "follower_id"}, {Name: "trainer_id"}},
			DoNothing: true,
		}).
		Create(follow).Error

	if err != nil && !infra.IsUniqueViolation(err) {
		return nil, err
	}

	var existing db_models.Follow
	err = f.db.WithContext(ctx).
		Where("follower_id = ? AND trainer_id = ?", followerID, trainerID).
		First(&existing).Error
	if err != nil {
		return nil, err
	}

	return &existing, nil
}

// Delete is a no-op when the edge does not exist.
func (f *followRepository) Delete(ctx context.Context, followerID, trainerID uuid.UUID) error {
	return f.db.WithContext(ctx).
		Where("follower_id = ? AND trainer_id = ?", followerID, trainerID).
		Delete(&db_models.Follow{}).Error
}

func (f *followRepository) ListByFollower(ctx context.Context, followerID uuid.UUID) ([]db_models.Follow, error) {
	var follows []db_models.Follow
	err := f.db.WithContext(ctx).
		Preload("Trainer").
		Where("follower_id = ?", followerID).
		Order("created_at DESC").
		Find(&follows).Error

	if err != nil {
		return nil, err
	}

	return follows, nil
}

func (f *followRepository) ListTrainerIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	var trainerIDs []uuid.UUID
	err := f.db.WithContext(ctx).
		Model(&db_models.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("trainer_id", &trainerIDs).Error

	if err != nil {
		return nil, err
	}

	return trainerIDs, nil
}
