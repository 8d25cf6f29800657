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

func CreateContactRequest(ctx context.Context, contact models.ContactRequest) (models.ContactRequest, error) {
	if contact.Name == "" || contact.Email == "" || contact.Message == "" {
		return models.ContactRequest{}, ErrMissingFields
	}
	contact.ID = primitive.NewObjectID()
	contact.IsRead = false
	contact.CreatedAt = time.Now().UTC()

	coll := db.OpenCollections(util.ContactCollection)
	if _, err := db.CreateOne(ctx, coll, contact); err != nil {
		log.Error().Err(err).Msg("failed to create contact request")
		return models.ContactRequest{}, err
	}
	return contact, nil
}

func FetchAllContactRequests(ctx context.Context) ([]models.ContactRequest, error) {
	coll := db.OpenCollections(util.ContactCollection)
	contacts := []models.ContactRequest{}
	if err := db.FindAll(ctx, coll, nil, nil, &contacts); err != nil {
		log.Error().Err(err).Msg("failed to fetch contact requests")
		return nil, err
	}
	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
	})
	return contacts, nil
}

/*
* Opening the detail view marks the request read
* The write only happens on the unread-to-read edge, a second view is a
* plain read and the operation stays idempotent
 */
func FetchContactRequest(ctx context.Context, id string) (models.ContactRequest, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return models.ContactRequest{}, err
	}

	coll := db.OpenCollections(util.ContactCollection)
	var contact models.ContactRequest
	if err := db.FindOne(ctx, coll, bson.M{"_id": oid}, &contact); err != nil {
		return models.ContactRequest{}, ErrNotFound
	}

	if !contact.IsRead {
		update := bson.M{"$set": bson.M{"isRead": true}}
		if _, err := db.UpdateOne(ctx, coll, bson.M{"_id": oid}, update); err != nil {
			log.Error().Err(err).Str("id", id).Msg("failed to mark contact request read")
			return models.ContactRequest{}, err
		}
		contact.IsRead = true
	}
	return contact, nil
}

func DeleteContactRequest(ctx context.Context, id string) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}
	coll := db.OpenCollections(util.ContactCollection)
	res, err := db.DeleteOne(ctx, coll, bson.M{"_id": oid})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete contact request")
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
