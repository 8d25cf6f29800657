package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"VisionCare360/config/db"
	"VisionCare360/models"
	"VisionCare360/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidStatus   = errors.New(util.INVALID_STATUS)
	ErrStatusFinalized = errors.New(util.STATUS_ALREADY_FINALIZED)
)

/*
* Public booking form write
* Status and createdAt are always server-assigned, whatever the client
* sent for either is discarded
 */
func CreateAppointment(ctx context.Context, appointment models.Appointment) (models.Appointment, error) {
	if appointment.PatientName == "" || appointment.Phone == "" || appointment.PreferredDate == "" {
		return models.Appointment{}, ErrMissingFields
	}
	appointment.ID = primitive.NewObjectID()
	appointment.Status = models.AppointmentPending
	appointment.CreatedAt = time.Now().UTC()
	appointment.UpdatedAt = appointment.CreatedAt

	coll := db.OpenCollections(util.AppointmentCollection)
	if _, err := db.CreateOne(ctx, coll, appointment); err != nil {
		log.Error().Err(err).Msg("failed to create appointment")
		return models.Appointment{}, err
	}
	return appointment, nil
}

func FetchAllAppointments(ctx context.Context) ([]models.Appointment, error) {
	coll := db.OpenCollections(util.AppointmentCollection)
	appointments := []models.Appointment{}
	if err := db.FindAll(ctx, coll, nil, nil, &appointments); err != nil {
		log.Error().Err(err).Msg("failed to fetch appointments")
		return nil, err
	}
	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].CreatedAt.After(appointments[j].CreatedAt)
	})
	return appointments, nil
}

// ValidAppointmentTransition reports whether an appointment currently in
// from may move to to. Approved and rejected are both terminal.
func ValidAppointmentTransition(from, to string) error {
	if to != models.AppointmentApproved && to != models.AppointmentRejected {
		return ErrInvalidStatus
	}
	if from != models.AppointmentPending {
		return ErrStatusFinalized
	}
	return nil
}

/*
* Load the current document first so the transition rule sees the real
* stored status, then write the new one
 */
func UpdateAppointmentStatus(ctx context.Context, id string, status string) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}

	coll := db.OpenCollections(util.AppointmentCollection)
	var current models.Appointment
	if err := db.FindOne(ctx, coll, bson.M{"_id": oid}, &current); err != nil {
		return ErrNotFound
	}
	if err := ValidAppointmentTransition(current.Status, status); err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}}
	if _, err := db.UpdateOne(ctx, coll, bson.M{"_id": oid}, update); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update appointment status")
		return err
	}
	return nil
}

func DeleteAppointment(ctx context.Context, id string) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}
	coll := db.OpenCollections(util.AppointmentCollection)
	res, err := db.DeleteOne(ctx, coll, bson.M{"_id": oid})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete appointment")
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
