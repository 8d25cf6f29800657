package controllers

import (
	"net/http"

	"VisionCare360/models"
	"VisionCare360/services"
	"VisionCare360/util"

	"github.com/gin-gonic/gin"
)

func Job(router *gin.RouterGroup) {
	jobs := router.Group("/jobs")
	{
		jobs.GET("/positions/fetchAll", FetchAllJobPositions)
		jobs.POST("/positions/create", CreateJobPosition)
		jobs.DELETE("/positions/delete/:id", DeleteJobPosition)

		jobs.GET("/applications/fetchAll", FetchAllJobApplications)
		jobs.PATCH("/applications/status/:id", UpdateJobApplicationStatus)
		jobs.DELETE("/applications/delete/:id", DeleteJobApplication)
	}
}

func FetchAllJobPositions(c *gin.Context) {
	positions, err := services.FetchAllJobPositions(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(positions))
}

func CreateJobPosition(c *gin.Context) {
	var position models.JobPosition
	if err := c.BindJSON(&position); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	created, err := services.CreateJobPosition(c.Request.Context(), position)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(created))
}

func DeleteJobPosition(c *gin.Context) {
	if err := services.DeleteJobPosition(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse("Position deleted"))
}

func FetchAllJobApplications(c *gin.Context) {
	applications, err := services.FetchAllJobApplications(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(applications))
}

/*
* Any of Reviewed, Interview and Rejected is accepted at any time,
* moving backwards included
 */
func UpdateJobApplicationStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	if err := services.UpdateJobApplicationStatus(c.Request.Context(), c.Param("id"), body.Status); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse("Application marked as "+body.Status))
}

func DeleteJobApplication(c *gin.Context) {
	if err := services.DeleteJobApplication(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse("Application deleted"))
}
