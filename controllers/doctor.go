package controllers

import (
	"net/http"

	"VisionCare360/models"
	"VisionCare360/services"
	"VisionCare360/util"

	"github.com/gin-gonic/gin"
)

func Doctor(router *gin.RouterGroup) {
	doctor := router.Group("/doctors")
	{
		doctor.GET("/fetchAll", FetchAllDoctors)
		doctor.POST("/create", CreateDoctor)
		doctor.PUT("/update/:id", UpdateDoctor)
		doctor.DELETE("/delete/:id", DeleteDoctor)
		doctor.POST("/seed", SeedDoctors)
	}
}

func FetchAllDoctors(c *gin.Context) {
	doctors, err := services.FetchAllDoctors(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(doctors))
}

/*
* Bind JSON
* And pass to the service
 */
func CreateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.BindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	created, err := services.CreateDoctor(c.Request.Context(), doctor)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(created))
}

func UpdateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.BindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	if err := services.UpdateDoctor(c.Request.Context(), c.Param("id"), doctor); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse("Doctor updated successfully"))
}

func DeleteDoctor(c *gin.Context) {
	if err := services.DeleteDoctor(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse("Doctor deleted successfully"))
}

func SeedDoctors(c *gin.Context) {
	count, err := services.SeedDefaultDoctors(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"inserted": count}))
}
