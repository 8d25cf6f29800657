package controllers

import (
	"net/http"

	"VisionCare360/middleware"
	"VisionCare360/services"
	"VisionCare360/util"

	"github.com/gin-gonic/gin"
)

// Only the master login may manage other panel logins.
func AdminUsers(router *gin.RouterGroup) {
	admins := router.Group("/users", middleware.RequireMaster())
	{
		admins.GET("/fetchAll", FetchAllAdmins)
		admins.POST("/create", CreateAdmin)
		admins.DELETE("/delete/:id", DeleteAdmin)
	}
}

func FetchAllAdmins(c *gin.Context) {
	admins, err := services.FetchAllAdmins(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(admins))
}

type createAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func CreateAdmin(c *gin.Context) {
	var req createAdminRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	admin, err := services.CreateAdmin(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(admin))
}

func DeleteAdmin(c *gin.Context) {
	if err := services.DeleteAdmin(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse("Admin deleted"))
}
