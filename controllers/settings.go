package controllers

import (
	"net/http"

	"VisionCare360/models"
	"VisionCare360/services"
	"VisionCare360/util"

	"github.com/gin-gonic/gin"
)

func Settings(router *gin.RouterGroup) {
	settings := router.Group("/settings")
	{
		settings.GET("/home-video", FetchHomeVideo)
		settings.PUT("/home-video", SaveHomeVideo)
		settings.GET("/why-choose-us", FetchWhyChooseUs)
		settings.PUT("/why-choose-us", SaveWhyChooseUs)
		settings.POST("/seed", SeedSettings)
	}
}

func FetchHomeVideo(c *gin.Context) {
	video, err := services.FetchHomeVideo(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(video))
}

func SaveHomeVideo(c *gin.Context) {
	var video models.HomeVideo
	if err := c.BindJSON(&video); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	if err := services.SaveHomeVideo(c.Request.Context(), video); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse("Home settings updated successfully"))
}

func FetchWhyChooseUs(c *gin.Context) {
	whyUs, err := services.FetchWhyChooseUs(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(whyUs))
}

func SaveWhyChooseUs(c *gin.Context) {
	var whyUs models.WhyChooseUs
	if err := c.BindJSON(&whyUs); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	if err := services.SaveWhyChooseUs(c.Request.Context(), whyUs); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse("Home settings updated successfully"))
}

func SeedSettings(c *gin.Context) {
	if err := services.SeedDefaultSettings(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse("Default settings loaded"))
}
