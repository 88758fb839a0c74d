package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fitmarket/internal/authz"
	"fitmarket/internal/models/db_models"
	"fitmarket/pkg/utils"
)

func newFeedService() (*MockFollowRepository, *MockPlanRepository, *MockSubscriptionRepository, FeedServiceInterface) {
	followRepo := new(MockFollowRepository)
	planRepo := new(MockPlanRepository)
	subscriptionRepo := new(MockSubscriptionRepository)
	return followRepo, planRepo, subscriptionRepo, NewFeedService(followRepo, planRepo, subscriptionRepo)
}

func TestBuildFeedRequiresAuthentication(t *testing.T) {
	_, _, _, service := newFeedService()

	_, err := service.BuildFeed(context.Background(), authz.Actor{})
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
}

func TestBuildFeedEmptyFollowSetSkipsPlanQuery(t *testing.T) {
	followRepo, planRepo, _, service := newFeedService()
	follower := userActor()

	followRepo.On("ListTrainerIDs", mock.Anything, follower.ID).Return([]uuid.UUID{}, nil)

	feed, err := service.BuildFeed(context.Background(), follower)

	assert.NoError(t, err)
	assert.Empty(t, feed)
	planRepo.AssertNotCalled(t, "ListByTrainerIDs", mock.Anything, mock.Anything)
}

func TestBuildFeedContainsOnlyFollowedTrainersPlans(t *testing.T) {
	followRepo, planRepo, subscriptionRepo, service := newFeedService()
	follower := userActor()
	followedTrainer := uuid.New()

	newer := db_models.Plan{Title: "New plan", TrainerID: followedTrainer}
	newer.ID = uuid.New()
	newer.CreatedAt = 200
	older := db_models.Plan{Title: "Old plan", TrainerID: followedTrainer}
	older.ID = uuid.New()
	older.CreatedAt = 100

	followRepo.On("ListTrainerIDs", mock.Anything, follower.ID).Return([]uuid.UUID{followedTrainer}, nil)
	planRepo.On("ListByTrainerIDs", mock.Anything, []uuid.UUID{followedTrainer}).Return([]db_models.Plan{newer, older}, nil)
	subscriptionRepo.On("ListPlanIDs", mock.Anything, follower.ID).Return([]uuid.UUID{}, nil)

	feed, err := service.BuildFeed(context.Background(), follower)

	assert.NoError(t, err)
	assert.Len(t, feed, 2)
	for _, plan := range feed {
		assert.Equal(t, followedTrainer, plan.TrainerID)
	}
	// Reverse-chronological order as delivered by the store.
	assert.Equal(t, "New plan", feed[0].Title)
	assert.Equal(t, "Old plan", feed[1].Title)
}

func TestBuildFeedGatesDescriptionsAgainstGrants(t *testing.T) {
	followRepo, planRepo, subscriptionRepo, service := newFeedService()
	follower := userActor()
	followedTrainer := uuid.New()

	granted := db_models.Plan{Title: "Paid", Description: "full text", TrainerID: followedTrainer}
	granted.ID = uuid.New()
	locked := db_models.Plan{Title: "Locked", Description: "full text", TrainerID: followedTrainer}
	locked.ID = uuid.New()

	followRepo.On("ListTrainerIDs", mock.Anything, follower.ID).Return([]uuid.UUID{followedTrainer}, nil)
	planRepo.On("ListByTrainerIDs", mock.Anything, []uuid.UUID{followedTrainer}).Return([]db_models.Plan{granted, locked}, nil)
	subscriptionRepo.On("ListPlanIDs", mock.Anything, follower.ID).Return([]uuid.UUID{granted.ID}, nil)

	feed, err := service.BuildFeed(context.Background(), follower)

	assert.NoError(t, err)
	assert.True(t, feed[0].Subscribed)
	assert.Equal(t, "full text", feed[0].Description)
	assert.False(t, feed[1].Subscribed)
	assert.NotEqual(t, "full text", feed[1].Description)
}
