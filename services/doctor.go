package services

import (
	"context"
	"sort"
	"time"

	"VisionCare360/config/db"
	"VisionCare360/models"
	"VisionCare360/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	doctorFallbackImage   = "https://images.unsplash.com/photo-1622253692010-333f2da6031d?q=80&w=1964&auto=format&fit=crop"
	directorFallbackImage = "https://images.unsplash.com/photo-1537368910025-700350fe46c7?q=80&w=2070&auto=format&fit=crop"
)

/*
* Fetch the whole collection and sort newest first in memory
* The store is not asked for an order, the list is small
 */
func FetchAllDoctors(ctx context.Context) ([]models.Doctor, error) {
	coll := db.OpenCollections(util.DoctorCollection)
	doctors := []models.Doctor{}
	if err := db.FindAll(ctx, coll, nil, nil, &doctors); err != nil {
		log.Error().Err(err).Msg("failed to fetch doctors")
		return nil, err
	}
	sort.SliceStable(doctors, func(i, j int) bool {
		return doctors[i].CreatedAt.After(doctors[j].CreatedAt)
	})
	return doctors, nil
}

/*
* Validate required fields and normalize the role value
* An empty image falls back to a stock photo matching the role
 */
func CreateDoctor(ctx context.Context, doctor models.Doctor) (models.Doctor, error) {
	if doctor.Name == "" || doctor.Qualification == "" || doctor.Specialization == "" {
		return models.Doctor{}, ErrMissingFields
	}
	if doctor.Role != models.RoleDirector {
		doctor.Role = models.RoleDoctor
	}
	if doctor.Image == "" {
		if doctor.Role == models.RoleDirector {
			doctor.Image = directorFallbackImage
		} else {
			doctor.Image = doctorFallbackImage
		}
	}
	doctor.ID = primitive.NewObjectID()
	doctor.CreatedAt = time.Now().UTC()
	doctor.UpdatedAt = doctor.CreatedAt

	coll := db.OpenCollections(util.DoctorCollection)
	if _, err := db.CreateOne(ctx, coll, doctor); err != nil {
		log.Error().Err(err).Msg("failed to create doctor")
		return models.Doctor{}, err
	}
	return doctor, nil
}

func UpdateDoctor(ctx context.Context, id string, doctor models.Doctor) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}
	if doctor.Role != models.RoleDirector {
		doctor.Role = models.RoleDoctor
	}

	update := bson.M{"$set": bson.M{
		"name":           doctor.Name,
		"qualification":  doctor.Qualification,
		"specialization": doctor.Specialization,
		"experience":     doctor.Experience,
		"description":    doctor.Description,
		"image":          doctor.Image,
		"role":           doctor.Role,
		"updatedAt":      time.Now().UTC(),
	}}

	coll := db.OpenCollections(util.DoctorCollection)
	res, err := db.UpdateOne(ctx, coll, bson.M{"_id": oid}, update)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update doctor")
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteDoctor(ctx context.Context, id string) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}
	coll := db.OpenCollections(util.DoctorCollection)
	res, err := db.DeleteOne(ctx, coll, bson.M{"_id": oid})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete doctor")
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

/*
* Insert the fixed sample set in one atomic batch
* There is no dedup key, running this twice duplicates all four records
 */
func SeedDefaultDoctors(ctx context.Context) (int, error) {
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(DefaultDoctors()))
	for _, d := range DefaultDoctors() {
		d.ID = primitive.NewObjectID()
		d.CreatedAt = now
		d.UpdatedAt = now
		docs = append(docs, d)
	}
	coll := db.OpenCollections(util.DoctorCollection)
	res, err := db.CreateMany(ctx, coll, docs)
	if err != nil {
		log.Error().Err(err).Msg("failed to seed default doctors")
		return 0, err
	}
	return len(res.InsertedIDs), nil
}
