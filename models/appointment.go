package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AppointmentPending  = "pending"
	AppointmentApproved = "approved"
	AppointmentRejected = "rejected"
)

// Doctor is denormalized free text from the booking form; renaming a
// doctor does not touch historical appointments.
type Appointment struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PatientName   string             `json:"patientName" bson:"patientName"`
	Phone         string             `json:"phone" bson:"phone"`
	Email         string             `json:"email" bson:"email"`
	PreferredDate string             `json:"preferredDate" bson:"preferredDate"`
	PreferredTime string             `json:"preferredTime" bson:"preferredTime"`
	Doctor        string             `json:"doctor" bson:"doctor"`
	Message       string             `json:"message" bson:"message"`
	Status        string             `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}
