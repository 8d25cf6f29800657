package controllers

import (
	"net/http"

	"VisionCare360/models"
	"VisionCare360/services"
	"VisionCare360/util"

	"github.com/gin-gonic/gin"
)

func Service(router *gin.RouterGroup) {
	service := router.Group("/services")
	{
		service.GET("/fetchAll", FetchAllServices)
		service.POST("/create", CreateService)
		service.PUT("/update/:id", UpdateService)
		service.DELETE("/delete/:id", DeleteService)
		service.POST("/seed", SeedServices)
	}
}

func FetchAllServices(c *gin.Context) {
	list, err := services.FetchAllServices(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(list))
}

func CreateService(c *gin.Context) {
	var service models.Service
	if err := c.BindJSON(&service); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	created, err := services.CreateService(c.Request.Context(), service)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(created))
}

func UpdateService(c *gin.Context) {
	var service models.Service
	if err := c.BindJSON(&service); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	if err := services.UpdateService(c.Request.Context(), c.Param("id"), service); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse("Service updated successfully"))
}

func DeleteService(c *gin.Context) {
	if err := services.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse("Service deleted successfully"))
}

func SeedServices(c *gin.Context) {
	count, err := services.SeedDefaultServices(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"inserted": count}))
}
