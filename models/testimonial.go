package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Testimonial struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Role      string             `json:"role" bson:"role"`
	Content   string             `json:"content" bson:"content"`
	Rating    int                `json:"rating" bson:"rating"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
