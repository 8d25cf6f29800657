package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Features is newline-delimited in the admin form and stored as a single
// string, the way the site renders it.
type Service struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Icon        string             `json:"icon" bson:"icon"`
	Price       string             `json:"price" bson:"price"`
	Features    string             `json:"features" bson:"features"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
