package middleware

import (
	"errors"
	"net/http"
	"strings"

	"VisionCare360/role"
	"VisionCare360/services"
	"VisionCare360/util"

	"github.com/gin-gonic/gin"
)

// BearerToken pulls the session token out of the Authorization header.
// The SSE client cannot set headers, so a token query parameter is
// accepted as a fallback there.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}

/*
* Resolve the token to a stored session and stash it on the context
* No token, unknown token or a malformed stored blob all read the same
* way, the request is not authenticated
 */
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := services.GetSession(c.Request.Context(), BearerToken(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.FailedResponse(errors.New(util.UNAUTHORIZED)))
			return
		}
		c.Set("session", session)
		c.Set("email", session.Email)
		c.Set("role", session.Role)
		c.Next()
	}
}

// RequireMaster gates the admin-user management screens.
func RequireMaster() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !role.CanManageAdmins(c.GetString("role")) {
			c.AbortWithStatusJSON(http.StatusForbidden, util.FailedResponse(errors.New(util.UNAUTHORIZED)))
			return
		}
		c.Next()
	}
}
