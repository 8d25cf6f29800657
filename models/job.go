package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ApplicationPending   = "Pending"
	ApplicationReviewed  = "Reviewed"
	ApplicationInterview = "Interview"
	ApplicationRejected  = "Rejected"
)

type JobPosition struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type JobApplication struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FullName   string             `json:"fullName" bson:"fullName"`
	Email      string             `json:"email" bson:"email"`
	Phone      string             `json:"phone" bson:"phone"`
	Position   string             `json:"position" bson:"position"`
	Experience string             `json:"experience" bson:"experience"`
	Message    string             `json:"message" bson:"message"`
	Status     string             `json:"status" bson:"status"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}
