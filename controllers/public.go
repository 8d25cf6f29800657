package controllers

import (
	"net/http"

	"VisionCare360/models"
	"VisionCare360/services"
	"VisionCare360/util"

	"github.com/gin-gonic/gin"
)

/*
* Everything the public site reads and the three forms it submits
* No authentication on any of these
 */
func Public(router *gin.Engine) {
	router.GET("/doctors", PublicDoctors)
	router.GET("/services", PublicServices)
	router.GET("/testimonials", PublicTestimonials)
	router.GET("/features", PublicFeatures)
	router.GET("/reels", PublicReels)
	router.GET("/jobs/positions", PublicJobPositions)
	router.GET("/seo/:pageId", PublicSeo)
	router.GET("/settings/home-video", PublicHomeVideo)
	router.GET("/settings/why-choose-us", PublicWhyChooseUs)
	router.GET("/contact-info", PublicContactInfo)

	router.POST("/appointments", BookAppointment)
	router.POST("/contacts", SubmitContactRequest)
	router.POST("/jobs/applications", SubmitJobApplication)
}

func PublicDoctors(c *gin.Context) {
	doctors, err := services.FetchAllDoctors(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(doctors))
}

func PublicServices(c *gin.Context) {
	list, err := services.FetchAllServices(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(list))
}

func PublicTestimonials(c *gin.Context) {
	testimonials, err := services.FetchAllTestimonials(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(testimonials))
}

func PublicFeatures(c *gin.Context) {
	features, err := services.FetchAllFeatures(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(features))
}

func PublicReels(c *gin.Context) {
	reels, err := services.FetchAllReels(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(reels))
}

func PublicJobPositions(c *gin.Context) {
	positions, err := services.FetchAllJobPositions(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(positions))
}

func PublicSeo(c *gin.Context) {
	setting, err := services.FetchSeoSetting(c.Request.Context(), c.Param("pageId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(setting))
}

func PublicHomeVideo(c *gin.Context) {
	video, err := services.FetchHomeVideo(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(video))
}

func PublicWhyChooseUs(c *gin.Context) {
	whyUs, err := services.FetchWhyChooseUs(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(whyUs))
}

// The chat widget's hardcoded outbound links.
func PublicContactInfo(c *gin.Context) {
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{
		"phone":      util.HospitalPhone,
		"tel":        util.TelLink(""),
		"whatsapp":   util.WhatsAppLink("", ""),
		"androidApp": util.AndroidAppPath,
	}))
}

func BookAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := c.BindJSON(&appointment); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	created, err := services.CreateAppointment(c.Request.Context(), appointment)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(created))
}

func SubmitContactRequest(c *gin.Context) {
	var contact models.ContactRequest
	if err := c.BindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	created, err := services.CreateContactRequest(c.Request.Context(), contact)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(created))
}

func SubmitJobApplication(c *gin.Context) {
	var application models.JobApplication
	if err := c.BindJSON(&application); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	created, err := services.CreateJobApplication(c.Request.Context(), application)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(created))
}
