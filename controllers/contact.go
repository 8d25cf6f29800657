package controllers

import (
	"net/http"

	"VisionCare360/services"
	"VisionCare360/util"

	"github.com/gin-gonic/gin"
)

func Contact(router *gin.RouterGroup) {
	contact := router.Group("/contacts")
	{
		contact.GET("/fetchAll", FetchAllContactRequests)
		contact.GET("/fetch/:id", FetchContactRequest)
		contact.DELETE("/delete/:id", DeleteContactRequest)
	}
}

func FetchAllContactRequests(c *gin.Context) {
	contacts, err := services.FetchAllContactRequests(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(contacts))
}

// Opening the detail view is what flips isRead; the service only writes
// on the first view.
func FetchContactRequest(c *gin.Context) {
	contact, err := services.FetchContactRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(contact))
}

func DeleteContactRequest(c *gin.Context) {
	if err := services.DeleteContactRequest(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse("Contact request deleted"))
}
