package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoUrl is either a direct video file or an embeddable Instagram
// link; the frontend decides which player to use.
type Reel struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VideoUrl     string             `json:"videoUrl" bson:"videoUrl"`
	ThumbnailUrl string             `json:"thumbnailUrl" bson:"thumbnailUrl"`
	Caption      string             `json:"caption" bson:"caption"`
	Views        int                `json:"views" bson:"views"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}
