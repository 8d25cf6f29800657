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

func FetchAllFeatures(ctx context.Context) ([]models.Feature, error) {
	coll := db.OpenCollections(util.FeatureCollection)
	features := []models.Feature{}
	if err := db.FindAll(ctx, coll, nil, nil, &features); err != nil {
		log.Error().Err(err).Msg("failed to fetch features")
		return nil, err
	}
	sort.SliceStable(features, func(i, j int) bool {
		return features[i].CreatedAt.After(features[j].CreatedAt)
	})
	return features, nil
}

func CreateFeature(ctx context.Context, feature models.Feature) (models.Feature, error) {
	if feature.Title == "" || feature.Description == "" {
		return models.Feature{}, ErrMissingFields
	}
	if !util.IsValidIcon(feature.Icon) {
		return models.Feature{}, ErrInvalidIcon
	}
	feature.ID = primitive.NewObjectID()
	feature.CreatedAt = time.Now().UTC()
	feature.UpdatedAt = feature.CreatedAt

	coll := db.OpenCollections(util.FeatureCollection)
	if _, err := db.CreateOne(ctx, coll, feature); err != nil {
		log.Error().Err(err).Msg("failed to create feature")
		return models.Feature{}, err
	}
	return feature, nil
}

func UpdateFeature(ctx context.Context, id string, feature models.Feature) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}
	if !util.IsValidIcon(feature.Icon) {
		return ErrInvalidIcon
	}

	update := bson.M{"$set": bson.M{
		"title":       feature.Title,
		"description": feature.Description,
		"icon":        feature.Icon,
		"updatedAt":   time.Now().UTC(),
	}}

	coll := db.OpenCollections(util.FeatureCollection)
	res, err := db.UpdateOne(ctx, coll, bson.M{"_id": oid}, update)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update feature")
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteFeature(ctx context.Context, id string) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}
	coll := db.OpenCollections(util.FeatureCollection)
	res, err := db.DeleteOne(ctx, coll, bson.M{"_id": oid})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete feature")
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func SeedDefaultFeatures(ctx context.Context) (int, error) {
	now := time.Now().UTC()
	docs := make([]interface{}, 0, 5)
	for _, f := range DefaultFeatures() {
		f.ID = primitive.NewObjectID()
		f.CreatedAt = now
		f.UpdatedAt = now
		docs = append(docs, f)
	}
	coll := db.OpenCollections(util.FeatureCollection)
	res, err := db.CreateMany(ctx, coll, docs)
	if err != nil {
		log.Error().Err(err).Msg("failed to seed default features")
		return 0, err
	}
	return len(res.InsertedIDs), nil
}
