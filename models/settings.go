package models

// Singleton documents in the settings collection.
const (
	HomeVideoDoc   = "home_video"
	WhyChooseUsDoc = "why_choose_us"
)

type HomeVideo struct {
	VideoUrl    string `json:"videoUrl" bson:"videoUrl"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}

type WhyChooseUs struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}
