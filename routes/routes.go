package routes

import (
	"VisionCare360/controllers"
	"VisionCare360/middleware"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	// public
	controllers.Auth(r)
	controllers.Public(r)

	// admin panel, session gated
	admin := r.Group("/admin", middleware.SessionAuth())
	controllers.Dashboard(admin)
	controllers.Doctor(admin)
	controllers.Service(admin)
	controllers.Testimonial(admin)
	controllers.Feature(admin)
	controllers.Appointment(admin)
	controllers.Contact(admin)
	controllers.Job(admin)
	controllers.Reel(admin)
	controllers.Seo(admin)
	controllers.Settings(admin)
	controllers.AdminUsers(admin)
}
