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

var ErrPositionTitleRequired = errors.New(util.POSITION_TITLE_REQUIRED)

func FetchAllJobPositions(ctx context.Context) ([]models.JobPosition, error) {
	coll := db.OpenCollections(util.JobPositionCollection)
	positions := []models.JobPosition{}
	if err := db.FindAll(ctx, coll, nil, nil, &positions); err != nil {
		log.Error().Err(err).Msg("failed to fetch job positions")
		return nil, err
	}
	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].CreatedAt.After(positions[j].CreatedAt)
	})
	return positions, nil
}

func CreateJobPosition(ctx context.Context, position models.JobPosition) (models.JobPosition, error) {
	if position.Title == "" {
		return models.JobPosition{}, ErrPositionTitleRequired
	}
	position.ID = primitive.NewObjectID()
	position.CreatedAt = time.Now().UTC()

	coll := db.OpenCollections(util.JobPositionCollection)
	if _, err := db.CreateOne(ctx, coll, position); err != nil {
		log.Error().Err(err).Msg("failed to create job position")
		return models.JobPosition{}, err
	}
	return position, nil
}

func DeleteJobPosition(ctx context.Context, id string) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}
	coll := db.OpenCollections(util.JobPositionCollection)
	res, err := db.DeleteOne(ctx, coll, bson.M{"_id": oid})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete job position")
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

/*
* Public apply form write, status and createdAt are server-assigned
 */
func CreateJobApplication(ctx context.Context, application models.JobApplication) (models.JobApplication, error) {
	if application.FullName == "" || application.Email == "" || application.Position == "" {
		return models.JobApplication{}, ErrMissingFields
	}
	application.ID = primitive.NewObjectID()
	application.Status = models.ApplicationPending
	application.CreatedAt = time.Now().UTC()
	application.UpdatedAt = application.CreatedAt

	coll := db.OpenCollections(util.JobApplicationCollection)
	if _, err := db.CreateOne(ctx, coll, application); err != nil {
		log.Error().Err(err).Msg("failed to create job application")
		return models.JobApplication{}, err
	}
	return application, nil
}

func FetchAllJobApplications(ctx context.Context) ([]models.JobApplication, error) {
	coll := db.OpenCollections(util.JobApplicationCollection)
	applications := []models.JobApplication{}
	if err := db.FindAll(ctx, coll, nil, nil, &applications); err != nil {
		log.Error().Err(err).Msg("failed to fetch job applications")
		return nil, err
	}
	sort.SliceStable(applications, func(i, j int) bool {
		return applications[i].CreatedAt.After(applications[j].CreatedAt)
	})
	return applications, nil
}

// ValidApplicationStatus reports whether status is an acceptable target
// for an admin action. The non-Pending states move freely between each
// other in any order, moving back to Reviewed after Interview included.
func ValidApplicationStatus(status string) bool {
	switch status {
	case models.ApplicationReviewed, models.ApplicationInterview, models.ApplicationRejected:
		return true
	}
	return false
}

func UpdateJobApplicationStatus(ctx context.Context, id string, status string) error {
	if !ValidApplicationStatus(status) {
		return ErrInvalidStatus
	}
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}}
	coll := db.OpenCollections(util.JobApplicationCollection)
	res, err := db.UpdateOne(ctx, coll, bson.M{"_id": oid}, update)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update application status")
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteJobApplication(ctx context.Context, id string) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}
	coll := db.OpenCollections(util.JobApplicationCollection)
	res, err := db.DeleteOne(ctx, coll, bson.M{"_id": oid})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete job application")
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
