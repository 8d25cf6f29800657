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

var ErrVideoUrlRequired = errors.New(util.VIDEO_URL_REQUIRED)

func FetchAllReels(ctx context.Context) ([]models.Reel, error) {
	coll := db.OpenCollections(util.ReelCollection)
	reels := []models.Reel{}
	if err := db.FindAll(ctx, coll, nil, nil, &reels); err != nil {
		log.Error().Err(err).Msg("failed to fetch reels")
		return nil, err
	}
	sort.SliceStable(reels, func(i, j int) bool {
		return reels[i].CreatedAt.After(reels[j].CreatedAt)
	})
	return reels, nil
}

func CreateReel(ctx context.Context, reel models.Reel) (models.Reel, error) {
	if reel.VideoUrl == "" {
		return models.Reel{}, ErrVideoUrlRequired
	}
	if reel.Views < 0 {
		reel.Views = 0
	}
	reel.ID = primitive.NewObjectID()
	reel.CreatedAt = time.Now().UTC()
	reel.UpdatedAt = reel.CreatedAt

	coll := db.OpenCollections(util.ReelCollection)
	if _, err := db.CreateOne(ctx, coll, reel); err != nil {
		log.Error().Err(err).Msg("failed to create reel")
		return models.Reel{}, err
	}
	return reel, nil
}

func UpdateReel(ctx context.Context, id string, reel models.Reel) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}
	if reel.VideoUrl == "" {
		return ErrVideoUrlRequired
	}

	update := bson.M{"$set": bson.M{
		"videoUrl":     reel.VideoUrl,
		"thumbnailUrl": reel.ThumbnailUrl,
		"caption":      reel.Caption,
		"views":        reel.Views,
		"updatedAt":    time.Now().UTC(),
	}}

	coll := db.OpenCollections(util.ReelCollection)
	res, err := db.UpdateOne(ctx, coll, bson.M{"_id": oid}, update)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update reel")
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteReel(ctx context.Context, id string) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}
	coll := db.OpenCollections(util.ReelCollection)
	res, err := db.DeleteOne(ctx, coll, bson.M{"_id": oid})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete reel")
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
