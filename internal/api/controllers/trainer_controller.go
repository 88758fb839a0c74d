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

type TrainerController struct {
	trainerService services.TrainerServiceInterface
}

func NewTrainerController(trainerService services.TrainerServiceInterface) *TrainerController {
	return &TrainerController{
		trainerService: trainerService,
	}
}

// List godoc
// @Summary Trainer directory
// @Tags Trainers
// @Produce json
// @Param search query string false "Substring filter on name"
// @Success 200 {object} utils.APIResponse
// @Router /trainers [get]
func (t *TrainerController) List(c *gin.Context) {
	var query request_models.BrowseQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	trainers, err := t.trainerService.ListTrainers(c.Request.Context(), query.Search)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trainers, "Trainers fetched successfully")
}

// GetByID godoc
// @Summary Trainer profile with their plans
// @Tags Trainers
// @Produce json
// @Param id path string true "Trainer id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trainers/{id} [get]
func (t *TrainerController) GetByID(c *gin.Context) {
	trainerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trainer id")
		return
	}

	profile, svcErr := t.trainerService.GetTrainerProfile(c.Request.Context(), middleware.CurrentActor(c), trainerID)
	if svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}

	utils.RespondSuccess(c, profile, "Trainer fetched successfully")
}
