package util

import "github.com/gin-gonic/gin"

// Collection names, one flat namespace shared by the public site and the
// admin panel.
const (
	DoctorCollection         = "doctors"
	ServiceCollection        = "services"
	TestimonialCollection    = "testimonials"
	FeatureCollection        = "features"
	AppointmentCollection    = "appointments"
	ContactCollection        = "contact_requests"
	JobPositionCollection    = "job_positions"
	JobApplicationCollection = "job_applications"
	ReelCollection           = "insta_reels"
	SettingsCollection       = "settings"
	SeoCollection            = "seo_settings"
	AdminCollection          = "admins"
)

const (
	INVALID_EMAIL_OR_PASSWORD   = "Invalid email or password"
	AUTHENTICATION_FAILED       = "Authentication failed"
	UNAUTHORIZED                = "Unauthorized"
	REQUIRED_FIELD_MISSING      = "Please fill all required fields"
	DOCUMENT_NOT_FOUND          = "Record not found"
	INVALID_STATUS              = "Invalid status value"
	STATUS_ALREADY_FINALIZED    = "Appointment status can no longer be changed"
	INVALID_RATING              = "Rating must be between 1 and 5"
	INVALID_PRICE               = "Price must be a number"
	INVALID_ICON                = "Unknown icon name"
	INVALID_PAGE_ID             = "Unknown page id"
	ADMIN_EMAIL_ALREADY_EXISTS  = "An admin with this email already exists"
	VIDEO_URL_REQUIRED          = "Video URL is required"
	POSITION_TITLE_REQUIRED     = "Position title is required"
	SOMETHING_WENT_WRONG        = "Something went wrong, please try again"
)

func SuccessResponse(data interface{}) gin.H {
	return gin.H{"success": true, "data": data}
}

func FailedResponse(err error) gin.H {
	return gin.H{"success": false, "error": err.Error()}
}

func MessageResponse(msg string) gin.H {
	return gin.H{"success": true, "message": msg}
}
