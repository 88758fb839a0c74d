package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fitmarket/internal/authz"
	"fitmarket/internal/models/db_models"
	"fitmarket/internal/models/request_models"
	"fitmarket/internal/models/response_models"
	"fitmarket/pkg/utils"
)

func newPlanService() (*MockPlanRepository, *MockSubscriptionRepository, PlanServiceInterface) {
	planRepo := new(MockPlanRepository)
	subscriptionRepo := new(MockSubscriptionRepository)
	return planRepo, subscriptionRepo, NewPlanService(planRepo, subscriptionRepo)
}

func TestCreatePlanValidation(t *testing.T) {
	_, _, service := newPlanService()
	trainer := trainerActor()

	cases := []struct {
		name    string
		request request_models.CreatePlanRequest
		wantErr error
	}{
		{"missing title", request_models.CreatePlanRequest{Price: 10, DurationDays: 30}, utils.ErrMissingTitle},
		{"negative price", request_models.CreatePlanRequest{Title: "10K Training", Price: -1, DurationDays: 30}, utils.ErrInvalidPrice},
		{"zero duration", request_models.CreatePlanRequest{Title: "10K Training", Price: 10, DurationDays: 0}, utils.ErrInvalidDuration},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreatePlan(context.Background(), trainer, tc.request)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCreatePlanForbiddenForUserRole(t *testing.T) {
	planRepo, _, service := newPlanService()

	_, err := service.CreatePlan(context.Background(), userActor(), request_models.CreatePlanRequest{
		Title: "10K Training", Price: 49.99, DurationDays: 30,
	})

	assert.ErrorIs(t, err, utils.ErrForbidden)
	planRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreatePlanRoundTrip(t *testing.T) {
	planRepo, _, service := newPlanService()
	trainer := trainerActor()

	planRepo.On("Insert", mock.Anything, mock.AnythingOfType("*db_models.Plan")).Return(nil)

	created, err := service.CreatePlan(context.Background(), trainer, request_models.CreatePlanRequest{
		Title:        "10K Training",
		Description:  "Week by week build-up to race day",
		Price:        49.99,
		DurationDays: 30,
	})

	assert.NoError(t, err)
	assert.Equal(t, "10K Training", created.Title)
	assert.Equal(t, "Week by week build-up to race day", created.Description)
	assert.Equal(t, 49.99, created.Price)
	assert.Equal(t, 30, created.DurationDays)
	assert.Equal(t, trainer.ID, created.TrainerID)
	planRepo.AssertExpectations(t)
}

func TestUpdatePlanNotFoundBeforeOwnership(t *testing.T) {
	planRepo, _, service := newPlanService()
	id := uuid.New()

	planRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

	_, err := service.UpdatePlan(context.Background(), trainerActor(), id, request_models.UpdatePlanRequest{})
	assert.ErrorIs(t, err, utils.ErrRecordNotFound)
}

func TestUpdatePlanForeignOwnerForbiddenForAnyRole(t *testing.T) {
	planRepo, _, service := newPlanService()
	stored := &db_models.Plan{Title: "Old", TrainerID: uuid.New()}
	stored.ID = uuid.New()

	planRepo.On("FindByID", mock.Anything, stored.ID).Return(stored, nil)

	_, err := service.UpdatePlan(context.Background(), trainerActor(), stored.ID, request_models.UpdatePlanRequest{})
	assert.ErrorIs(t, err, utils.ErrNotOwner)

	_, err = service.UpdatePlan(context.Background(), userActor(), stored.ID, request_models.UpdatePlanRequest{})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	planRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdatePlanPartialMergePreservesFields(t *testing.T) {
	planRepo, _, service := newPlanService()
	owner := trainerActor()

	stored := &db_models.Plan{
		Title:        "10K Training",
		Description:  "Original description",
		Price:        49.99,
		DurationDays: 30,
		TrainerID:    owner.ID,
	}
	stored.ID = uuid.New()

	planRepo.On("FindByID", mock.Anything, stored.ID).Return(stored, nil)
	planRepo.On("Update", mock.Anything, stored).Return(nil)

	newPrice := 59.99
	updated, err := service.UpdatePlan(context.Background(), owner, stored.ID, request_models.UpdatePlanRequest{
		Price: &newPrice,
	})

	assert.NoError(t, err)
	assert.Equal(t, 59.99, updated.Price)
	assert.Equal(t, "10K Training", updated.Title)
	assert.Equal(t, "Original description", updated.Description)
	assert.Equal(t, 30, updated.DurationDays)
	planRepo.AssertExpectations(t)
}

func TestUpdatePlanRejectsInvalidMergedFields(t *testing.T) {
	planRepo, _, service := newPlanService()
	owner := trainerActor()

	stored := &db_models.Plan{Title: "10K Training", Price: 49.99, DurationDays: 30, TrainerID: owner.ID}
	stored.ID = uuid.New()

	planRepo.On("FindByID", mock.Anything, stored.ID).Return(stored, nil)

	badPrice := -5.0
	_, err := service.UpdatePlan(context.Background(), owner, stored.ID, request_models.UpdatePlanRequest{Price: &badPrice})

	assert.ErrorIs(t, err, utils.ErrInvalidPrice)
	planRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeletePlanRemovesSubscriptionsWithIt(t *testing.T) {
	planRepo, _, service := newPlanService()
	owner := trainerActor()

	stored := &db_models.Plan{Title: "10K Training", TrainerID: owner.ID}
	stored.ID = uuid.New()

	planRepo.On("FindByID", mock.Anything, stored.ID).Return(stored, nil)
	planRepo.On("DeleteWithSubscriptions", mock.Anything, stored).Return(nil)

	assert.NoError(t, service.DeletePlan(context.Background(), owner, stored.ID))
	planRepo.AssertExpectations(t)
}

func TestGetPlanForViewerGatesDescription(t *testing.T) {
	planRepo, subscriptionRepo, service := newPlanService()
	viewer := userActor()

	stored := &db_models.Plan{
		Title:        "10K Training",
		Description:  "Full week by week schedule",
		Price:        49.99,
		DurationDays: 30,
		TrainerID:    uuid.New(),
	}
	stored.ID = uuid.New()

	planRepo.On("FindByIDWithTrainer", mock.Anything, stored.ID).Return(stored, nil)

	subscriptionRepo.On("Exists", mock.Anything, viewer.ID, stored.ID).Return(true, nil).Once()
	subscribed, err := service.GetPlanForViewer(context.Background(), viewer, stored.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Full week by week schedule", subscribed.Description)
	assert.True(t, subscribed.Subscribed)

	subscriptionRepo.On("Exists", mock.Anything, viewer.ID, stored.ID).Return(false, nil).Once()
	unsubscribed, err := service.GetPlanForViewer(context.Background(), viewer, stored.ID)
	assert.NoError(t, err)
	assert.Equal(t, response_models.DescriptionPlaceholder, unsubscribed.Description)
	assert.False(t, unsubscribed.Subscribed)

	// Title, price, duration and trainer stay visible either way.
	assert.Equal(t, subscribed.Title, unsubscribed.Title)
	assert.Equal(t, subscribed.Price, unsubscribed.Price)
	assert.Equal(t, subscribed.DurationDays, unsubscribed.DurationDays)
	assert.Equal(t, subscribed.TrainerID, unsubscribed.TrainerID)
}

func TestGetPlanForViewerAnonymousNeverQueriesGrants(t *testing.T) {
	planRepo, subscriptionRepo, service := newPlanService()

	stored := &db_models.Plan{Title: "10K Training", Description: "secret", TrainerID: uuid.New()}
	stored.ID = uuid.New()

	planRepo.On("FindByIDWithTrainer", mock.Anything, stored.ID).Return(stored, nil)

	rendered, err := service.GetPlanForViewer(context.Background(), authz.Actor{}, stored.ID)

	assert.NoError(t, err)
	assert.Equal(t, response_models.DescriptionPlaceholder, rendered.Description)
	subscriptionRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
}

func TestBrowsePlansGatesPerViewer(t *testing.T) {
	planRepo, subscriptionRepo, service := newPlanService()
	viewer := userActor()

	owned := db_models.Plan{Title: "Subscribed plan", Description: "visible", TrainerID: uuid.New()}
	owned.ID = uuid.New()
	other := db_models.Plan{Title: "Other plan", Description: "hidden", TrainerID: uuid.New()}
	other.ID = uuid.New()

	planRepo.On("ListAll", mock.Anything, "").Return([]db_models.Plan{owned, other}, nil)
	subscriptionRepo.On("ListPlanIDs", mock.Anything, viewer.ID).Return([]uuid.UUID{owned.ID}, nil)

	plans, err := service.BrowsePlans(context.Background(), viewer, "")

	assert.NoError(t, err)
	assert.Len(t, plans, 2)
	assert.Equal(t, "visible", plans[0].Description)
	assert.Equal(t, response_models.DescriptionPlaceholder, plans[1].Description)
}
