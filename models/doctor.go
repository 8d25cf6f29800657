package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleDoctor   = "Doctor"
	RoleDirector = "Director"
)

type Doctor struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Qualification  string             `json:"qualification" bson:"qualification"`
	Specialization string             `json:"specialization" bson:"specialization"`
	Experience     string             `json:"experience" bson:"experience"`
	Description    string             `json:"description" bson:"description"`
	Image          string             `json:"image" bson:"image"`
	Role           string             `json:"role" bson:"role"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}
