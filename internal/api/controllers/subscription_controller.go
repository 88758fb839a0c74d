package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fitmarket/internal/services"
	"fitmarket/pkg/middleware"
	"fitmarket/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

// Subscribe grants access to one plan's full description. Duplicate
// subscribes collapse onto the existing grant.
func (s *SubscriptionController) Subscribe(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("planId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan id")
		return
	}

	subscription, svcErr := s.subscriptionService.Subscribe(c.Request.Context(), middleware.CurrentActor(c), planID)
	if svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}

	utils.RespondSuccess(c, subscription, "Subscribed to plan")
}

// Unsubscribe is idempotent.
func (s *SubscriptionController) Unsubscribe(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("planId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan id")
		return
	}

	if err := s.subscriptionService.Unsubscribe(c.Request.Context(), middleware.CurrentActor(c), planID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Unsubscribed from plan")
}

func (s *SubscriptionController) ListMine(c *gin.Context) {
	plans, err := s.subscriptionService.ListMySubscriptions(c.Request.Context(), middleware.CurrentActor(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Subscriptions fetched successfully")
}
