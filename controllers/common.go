package controllers

import (
	"errors"
	"net/http"

	"VisionCare360/services"
	"VisionCare360/util"

	"github.com/gin-gonic/gin"
)

/*
* Convert a service error to the matching response
* Validation problems are the caller's fault, unknown errors are ours
* and surface with a generic message only
 */
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, util.FailedResponse(err))
	case errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrStatusFinalized),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrInvalidIcon),
		errors.Is(err, services.ErrInvalidPageId),
		errors.Is(err, services.ErrVideoUrlRequired),
		errors.Is(err, services.ErrPositionTitleRequired),
		errors.Is(err, services.ErrAdminExists):
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrAuthFailed),
		errors.Is(err, services.ErrNoSession):
		c.JSON(http.StatusUnauthorized, util.FailedResponse(err))
	default:
		c.JSON(http.StatusInternalServerError, util.FailedResponse(errors.New(util.SOMETHING_WENT_WRONG)))
	}
}
