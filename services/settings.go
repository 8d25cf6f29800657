package services

import (
	"context"
	"errors"

	"VisionCare360/config/db"
	"VisionCare360/models"
	"VisionCare360/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func FetchHomeVideo(ctx context.Context) (models.HomeVideo, error) {
	coll := db.OpenCollections(util.SettingsCollection)
	var video models.HomeVideo
	err := db.FindOne(ctx, coll, bson.M{"_id": models.HomeVideoDoc}, &video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.HomeVideo{}, nil
		}
		log.Error().Err(err).Msg("failed to fetch home video settings")
		return models.HomeVideo{}, err
	}
	return video, nil
}

func FetchWhyChooseUs(ctx context.Context) (models.WhyChooseUs, error) {
	coll := db.OpenCollections(util.SettingsCollection)
	var whyUs models.WhyChooseUs
	err := db.FindOne(ctx, coll, bson.M{"_id": models.WhyChooseUsDoc}, &whyUs)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.WhyChooseUs{}, nil
		}
		log.Error().Err(err).Msg("failed to fetch why-choose-us settings")
		return models.WhyChooseUs{}, err
	}
	return whyUs, nil
}

func SaveHomeVideo(ctx context.Context, video models.HomeVideo) error {
	coll := db.OpenCollections(util.SettingsCollection)
	update := bson.M{"$set": bson.M{
		"videoUrl":    video.VideoUrl,
		"title":       video.Title,
		"description": video.Description,
	}}
	if _, err := db.UpsertOne(ctx, coll, bson.M{"_id": models.HomeVideoDoc}, update); err != nil {
		log.Error().Err(err).Msg("failed to save home video settings")
		return err
	}
	return nil
}

func SaveWhyChooseUs(ctx context.Context, whyUs models.WhyChooseUs) error {
	coll := db.OpenCollections(util.SettingsCollection)
	update := bson.M{"$set": bson.M{
		"title":       whyUs.Title,
		"description": whyUs.Description,
	}}
	if _, err := db.UpsertOne(ctx, coll, bson.M{"_id": models.WhyChooseUsDoc}, update); err != nil {
		log.Error().Err(err).Msg("failed to save why-choose-us settings")
		return err
	}
	return nil
}

// SeedDefaultSettings restores both singleton documents to the stock
// content. Upserts, so unlike the list seeds this cannot duplicate.
func SeedDefaultSettings(ctx context.Context) error {
	if err := SaveHomeVideo(ctx, DefaultHomeVideo()); err != nil {
		return err
	}
	return SaveWhyChooseUs(ctx, DefaultWhyChooseUs())
}
