package models

// One document per logical page, keyed by PageId rather than an ObjectID
// so the public page can fetch its metadata directly.
type SeoSetting struct {
	PageId      string `json:"pageId" bson:"_id"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Keywords    string `json:"keywords" bson:"keywords"`
}
