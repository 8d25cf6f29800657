package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"VisionCare360/config/db"
	"VisionCare360/models"
	"VisionCare360/role"
	"VisionCare360/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrAdminExists = errors.New(util.ADMIN_EMAIL_ALREADY_EXISTS)

// The master login lives in env, not in the collection, so the list only
// carries the documents admins added themselves.
func FetchAllAdmins(ctx context.Context) ([]models.Admin, error) {
	coll := db.OpenCollections(util.AdminCollection)
	admins := []models.Admin{}
	if err := db.FindAll(ctx, coll, nil, nil, &admins); err != nil {
		log.Error().Err(err).Msg("failed to fetch admins")
		return nil, err
	}
	sort.SliceStable(admins, func(i, j int) bool {
		return admins[i].CreatedAt.After(admins[j].CreatedAt)
	})
	return admins, nil
}

/*
* Reject duplicate emails, hash the password, store
* Plaintext never reaches the collection
 */
func CreateAdmin(ctx context.Context, email, password, adminRole string) (models.Admin, error) {
	if email == "" || password == "" {
		return models.Admin{}, ErrMissingFields
	}
	if !role.IsValid(adminRole) {
		adminRole = role.Admin
	}

	coll := db.OpenCollections(util.AdminCollection)
	var existing models.Admin
	err := db.FindOne(ctx, coll, bson.M{"email": email}, &existing)
	if err == nil {
		return models.Admin{}, ErrAdminExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Error().Err(err).Msg("failed to check existing admin")
		return models.Admin{}, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return models.Admin{}, err
	}

	admin := models.Admin{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  hash,
		Role:      adminRole,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := db.CreateOne(ctx, coll, admin); err != nil {
		log.Error().Err(err).Msg("failed to create admin")
		return models.Admin{}, err
	}
	return admin, nil
}

func DeleteAdmin(ctx context.Context, id string) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}
	coll := db.OpenCollections(util.AdminCollection)
	res, err := db.DeleteOne(ctx, coll, bson.M{"_id": oid})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete admin")
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
