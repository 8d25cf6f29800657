package controllers

import (
	"net/http"

	"VisionCare360/models"
	"VisionCare360/services"
	"VisionCare360/util"

	"github.com/gin-gonic/gin"
)

func Testimonial(router *gin.RouterGroup) {
	testimonial := router.Group("/testimonials")
	{
		testimonial.GET("/fetchAll", FetchAllTestimonials)
		testimonial.POST("/create", CreateTestimonial)
		testimonial.PUT("/update/:id", UpdateTestimonial)
		testimonial.DELETE("/delete/:id", DeleteTestimonial)
		testimonial.POST("/seed", SeedTestimonials)
	}
}

func FetchAllTestimonials(c *gin.Context) {
	testimonials, err := services.FetchAllTestimonials(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(testimonials))
}

func CreateTestimonial(c *gin.Context) {
	var testimonial models.Testimonial
	if err := c.BindJSON(&testimonial); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	created, err := services.CreateTestimonial(c.Request.Context(), testimonial)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(created))
}

func UpdateTestimonial(c *gin.Context) {
	var testimonial models.Testimonial
	if err := c.BindJSON(&testimonial); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	if err := services.UpdateTestimonial(c.Request.Context(), c.Param("id"), testimonial); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse("Testimonial updated successfully"))
}

func DeleteTestimonial(c *gin.Context) {
	if err := services.DeleteTestimonial(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse("Testimonial deleted successfully"))
}

func SeedTestimonials(c *gin.Context) {
	count, err := services.SeedDefaultTestimonials(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"inserted": count}))
}
