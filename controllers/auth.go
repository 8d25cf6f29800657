package controllers

import (
	"net/http"

	"VisionCare360/middleware"
	"VisionCare360/services"
	"VisionCare360/util"

	"github.com/gin-gonic/gin"
)

func Auth(router *gin.Engine) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", Login)
		auth.POST("/logout", Logout)
		auth.GET("/me", middleware.SessionAuth(), Me)
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
* Bind the credentials and pass to the service
* The response carries the opaque session token the panel sends back as
* a bearer header
 */
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	token, session, err := services.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{
		"token": token,
		"email": session.Email,
		"role":  session.Role,
	}))
}

// Logout deletes the session behind the presented token. Succeeds even
// when the token is already gone.
func Logout(c *gin.Context) {
	if err := services.Logout(c.Request.Context(), middleware.BearerToken(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse("Logged out"))
}

func Me(c *gin.Context) {
	session, _ := c.Get("session")
	c.JSON(http.StatusOK, util.SuccessResponse(session))
}
