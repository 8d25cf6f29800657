package controllers

import (
	"net/http"

	"VisionCare360/models"
	"VisionCare360/services"
	"VisionCare360/util"

	"github.com/gin-gonic/gin"
)

func Seo(router *gin.RouterGroup) {
	seo := router.Group("/seo")
	{
		seo.GET("/fetchAll", FetchAllSeoSettings)
		seo.PUT("/update/:pageId", UpdateSeoSetting)
	}
}

func FetchAllSeoSettings(c *gin.Context) {
	settings, err := services.FetchAllSeoSettings(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(settings))
}

/*
* Upsert, one document per logical page id
* Unknown page ids are rejected rather than creating stray documents
 */
func UpdateSeoSetting(c *gin.Context) {
	var setting models.SeoSetting
	if err := c.BindJSON(&setting); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	setting.PageId = c.Param("pageId")
	if err := services.UpsertSeoSetting(c.Request.Context(), setting); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse("SEO settings updated successfully"))
}
