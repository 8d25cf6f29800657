package controllers

import (
	"net/http"

	"VisionCare360/models"
	"VisionCare360/services"
	"VisionCare360/util"

	"github.com/gin-gonic/gin"
)

func Feature(router *gin.RouterGroup) {
	feature := router.Group("/features")
	{
		feature.GET("/fetchAll", FetchAllFeatures)
		feature.POST("/create", CreateFeature)
		feature.PUT("/update/:id", UpdateFeature)
		feature.DELETE("/delete/:id", DeleteFeature)
		feature.POST("/seed", SeedFeatures)
	}
}

func FetchAllFeatures(c *gin.Context) {
	features, err := services.FetchAllFeatures(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(features))
}

func CreateFeature(c *gin.Context) {
	var feature models.Feature
	if err := c.BindJSON(&feature); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	created, err := services.CreateFeature(c.Request.Context(), feature)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(created))
}

func UpdateFeature(c *gin.Context) {
	var feature models.Feature
	if err := c.BindJSON(&feature); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	if err := services.UpdateFeature(c.Request.Context(), c.Param("id"), feature); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse("Feature updated successfully"))
}

func DeleteFeature(c *gin.Context) {
	if err := services.DeleteFeature(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse("Feature deleted successfully"))
}

func SeedFeatures(c *gin.Context) {
	count, err := services.SeedDefaultFeatures(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"inserted": count}))
}
