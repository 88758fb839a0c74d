package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"fitmarket/internal/authz"
	"fitmarket/internal/models/db_models"
	"fitmarket/internal/repositories"
)

func trainerActor() authz.Actor {
	return authz.Actor{ID: uuid.New(), Role: db_models.RoleTrainer, Authenticated: true}
}

func userActor() authz.Actor {
	return authz.Actor{ID: uuid.New(), Role: db_models.RoleUser, Authenticated: true}
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Account), args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *db_models.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) ListTrainers(ctx context.Context, search string) ([]db_models.Account, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Account), args.Error(1)
}

var _ repositories.AccountRepository = (*MockAccountRepository)(nil)

type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) Insert(ctx context.Context, plan *db_models.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Plan), args.Error(1)
}

func (m *MockPlanRepository) FindByIDWithTrainer(ctx context.Context, id uuid.UUID) (*db_models.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Plan), args.Error(1)
}

func (m *MockPlanRepository) ListAll(ctx context.Context, search string) ([]db_models.Plan, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Plan), args.Error(1)
}

func (m *MockPlanRepository) ListByTrainer(ctx context.Context, trainerID uuid.UUID) ([]db_models.Plan, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Plan), args.Error(1)
}

func (m *MockPlanRepository) ListByTrainerIDs(ctx context.Context, trainerIDs []uuid.UUID) ([]db_models.Plan, error) {
	args := m.Called(ctx, trainerIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Plan), args.Error(1)
}

func (m *MockPlanRepository) Update(ctx context.Context, plan *db_models.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) DeleteWithSubscriptions(ctx context.Context, plan *db_models.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

var _ repositories.PlanRepository = (*MockPlanRepository)(nil)

type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Upsert(ctx context.Context, followerID, trainerID uuid.UUID) (*db_models.Follow, error) {
	args := m.Called(ctx, followerID, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Follow), args.Error(1)
}

func (m *MockFollowRepository) Delete(ctx context.Context, followerID, trainerID uuid.UUID) error {
	args := m.Called(ctx, followerID, trainerID)
	return args.Error(0)
}

func (m *MockFollowRepository) ListByFollower(ctx context.Context, followerID uuid.UUID) ([]db_models.Follow, error) {
	args := m.Called(ctx, followerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Follow), args.Error(1)
}

func (m *MockFollowRepository) ListTrainerIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, followerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

var _ repositories.FollowRepository = (*MockFollowRepository)(nil)

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Upsert(ctx context.Context, userID, planID uuid.UUID) (*db_models.Subscription, error) {
	args := m.Called(ctx, userID, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Delete(ctx context.Context, userID, planID uuid.UUID) error {
	args := m.Called(ctx, userID, planID)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Exists(ctx context.Context, userID, planID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, planID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) ListPlanIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

var _ repositories.SubscriptionRepository = (*MockSubscriptionRepository)(nil)
