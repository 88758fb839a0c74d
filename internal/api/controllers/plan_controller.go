package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fitmarket/internal/models/request_models"
	"fitmarket/internal/services"
	"fitmarket/pkg/middleware"
	"fitmarket/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

func planID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan id")
		return uuid.Nil, false
	}
	return id, true
}

// Create godoc
// @Summary Create a fitness plan
// @Description Trainer-only; validates price and duration
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.CreatePlanRequest true "Plan payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans [post]
func (p *PlanController) Create(c *gin.Context) {
	var req request_models.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.planService.CreatePlan(c.Request.Context(), middleware.CurrentActor(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, plan, "Plan created successfully")
}

// MyPlans godoc
// @Summary List own plans
// @Description Trainer management view with full descriptions
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/mine [get]
func (p *PlanController) MyPlans(c *gin.Context) {
	plans, err := p.planService.GetMyPlans(c.Request.Context(), middleware.CurrentActor(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

// Update godoc
// @Summary Update a plan
// @Description Partial merge patch; owner only; 404 before 403
// @Tags Plans
// @Accept json
// @Produce json
// @Param id path string true "Plan id"
// @Param request body request_models.UpdatePlanRequest true "Plan patch"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/{id} [put]
func (p *PlanController) Update(c *gin.Context) {
	id, ok := planID(c)
	if !ok {
		return
	}

	var req request_models.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.planService.UpdatePlan(c.Request.Context(), middleware.CurrentActor(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan updated successfully")
}

// Delete godoc
// @Summary Delete a plan
// @Description Owner only; removes the plan and its subscriptions
// @Tags Plans
// @Produce json
// @Param id path string true "Plan id"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/{id} [delete]
func (p *PlanController) Delete(c *gin.Context) {
	id, ok := planID(c)
	if !ok {
		return
	}

	if err := p.planService.DeletePlan(c.Request.Context(), middleware.CurrentActor(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plan deleted successfully")
}

// Browse godoc
// @Summary Browse all plans
// @Description Public; optional case-insensitive search on title or trainer name; descriptions gated per viewer
// @Tags Plans
// @Produce json
// @Param search query string false "Substring filter"
// @Success 200 {object} utils.APIResponse
// @Router /plans [get]
func (p *PlanController) Browse(c *gin.Context) {
	var query request_models.BrowseQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	plans, err := p.planService.BrowsePlans(c.Request.Context(), middleware.CurrentActor(c), query.Search)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

// GetByID godoc
// @Summary Get one plan
// @Description Public; the description is a placeholder unless the viewer subscribes to this plan
// @Tags Plans
// @Produce json
// @Param id path string true "Plan id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plans/{id} [get]
func (p *PlanController) GetByID(c *gin.Context) {
	id, ok := planID(c)
	if !ok {
		return
	}

	plan, err := p.planService.GetPlanForViewer(c.Request.Context(), middleware.CurrentActor(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan fetched successfully")
}
