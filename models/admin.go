package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin is a panel login, not a doctor. Password holds a bcrypt hash and
// is never returned in responses.
type Admin struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	Role      string             `json:"role" bson:"role"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
