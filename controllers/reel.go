package controllers

import (
	"net/http"

	"VisionCare360/models"
	"VisionCare360/services"
	"VisionCare360/util"

	"github.com/gin-gonic/gin"
)

func Reel(router *gin.RouterGroup) {
	reel := router.Group("/reels")
	{
		reel.GET("/fetchAll", FetchAllReels)
		reel.POST("/create", CreateReel)
		reel.PUT("/update/:id", UpdateReel)
		reel.DELETE("/delete/:id", DeleteReel)
	}
}

func FetchAllReels(c *gin.Context) {
	reels, err := services.FetchAllReels(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(reels))
}

func CreateReel(c *gin.Context) {
	var reel models.Reel
	if err := c.BindJSON(&reel); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	created, err := services.CreateReel(c.Request.Context(), reel)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(created))
}

func UpdateReel(c *gin.Context) {
	var reel models.Reel
	if err := c.BindJSON(&reel); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	if err := services.UpdateReel(c.Request.Context(), c.Param("id"), reel); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse("Reel updated successfully"))
}

func DeleteReel(c *gin.Context) {
	if err := services.DeleteReel(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse("Reel deleted successfully"))
}
