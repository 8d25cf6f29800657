package controllers

import (
	"net/http"

	"VisionCare360/services"
	"VisionCare360/util"

	"github.com/gin-gonic/gin"
)

func Appointment(router *gin.RouterGroup) {
	appointment := router.Group("/appointments")
	{
		appointment.GET("/fetchAll", FetchAllAppointments)
		appointment.PATCH("/status/:id", UpdateAppointmentStatus)
		appointment.DELETE("/delete/:id", DeleteAppointment)
	}
}

func FetchAllAppointments(c *gin.Context) {
	appointments, err := services.FetchAllAppointments(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appointments))
}

/*
* Bind the target status
* Approve or reject, the service enforces that pending is the only
* state a transition may leave from
 */
func UpdateAppointmentStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	if err := services.UpdateAppointmentStatus(c.Request.Context(), c.Param("id"), body.Status); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse("Appointment "+body.Status))
}

func DeleteAppointment(c *gin.Context) {
	if err := services.DeleteAppointment(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse("Appointment deleted"))
}
