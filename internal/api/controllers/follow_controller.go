package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fitmarket/internal/services"
	"fitmarket/pkg/middleware"
	"fitmarket/pkg/utils"
)

type FollowController struct {
	followService services.FollowServiceInterface
}

func NewFollowController(followService services.FollowServiceInterface) *FollowController {
	return &FollowController{
		followService: followService,
	}
}

// Follow creates the edge; following an already-followed trainer is a
// success returning the existing edge.
func (f *FollowController) Follow(c *gin.Context) {
	trainerID, err := uuid.Parse(c.Param("trainerId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trainer id")
		return
	}

	follow, svcErr := f.followService.Follow(c.Request.Context(), middleware.CurrentActor(c), trainerID)
	if svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}

	utils.RespondSuccess(c, follow, "Trainer followed")
}

// Unfollow is idempotent; a missing edge still reports success.
func (f *FollowController) Unfollow(c *gin.Context) {
	trainerID, err := uuid.Parse(c.Param("trainerId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trainer id")
		return
	}

	if err := f.followService.Unfollow(c.Request.Context(), middleware.CurrentActor(c), trainerID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trainer unfollowed")
}

func (f *FollowController) ListFollowed(c *gin.Context) {
	trainers, err := f.followService.ListFollowedTrainers(c.Request.Context(), middleware.CurrentActor(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trainers, "Followed trainers fetched successfully")
}
