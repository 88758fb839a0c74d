package controllers

import (
	"github.com/gin-gonic/gin"

	"fitmarket/internal/services"
	"fitmarket/pkg/middleware"
	"fitmarket/pkg/utils"
)

type FeedController struct {
	feedService services.FeedServiceInterface
}

func NewFeedController(feedService services.FeedServiceInterface) *FeedController {
	return &FeedController{
		feedService: feedService,
	}
}

// GetFeed godoc
// @Summary Personalized plan feed
// @Description Plans from followed trainers, newest first; empty when following nobody
// @Tags Feed
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /feed [get]
func (f *FeedController) GetFeed(c *gin.Context) {
	feed, err := f.feedService.BuildFeed(c.Request.Context(), middleware.CurrentActor(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feed, "Feed fetched successfully")
}
