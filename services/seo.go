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

var ErrInvalidPageId = errors.New(util.INVALID_PAGE_ID)

// The logical pages the site renders; one SEO document may exist per id.
var seoPages = []string{
	"home", "about", "services", "team", "contact", "why-netra", "appointment",
}

func SeoPageIds() []string {
	out := make([]string, len(seoPages))
	copy(out, seoPages)
	return out
}

func IsValidSeoPage(pageId string) bool {
	for _, p := range seoPages {
		if p == pageId {
			return true
		}
	}
	return false
}

/*
* Missing settings are not an error, the page just renders its built-in
* defaults, so an absent document comes back as an empty setting
 */
func FetchSeoSetting(ctx context.Context, pageId string) (models.SeoSetting, error) {
	if !IsValidSeoPage(pageId) {
		return models.SeoSetting{}, ErrInvalidPageId
	}
	coll := db.OpenCollections(util.SeoCollection)
	var setting models.SeoSetting
	err := db.FindOne(ctx, coll, bson.M{"_id": pageId}, &setting)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.SeoSetting{PageId: pageId}, nil
		}
		log.Error().Err(err).Str("pageId", pageId).Msg("failed to fetch seo setting")
		return models.SeoSetting{}, err
	}
	return setting, nil
}

func FetchAllSeoSettings(ctx context.Context) ([]models.SeoSetting, error) {
	settings := make([]models.SeoSetting, 0, len(seoPages))
	for _, pageId := range seoPages {
		setting, err := FetchSeoSetting(ctx, pageId)
		if err != nil {
			return nil, err
		}
		settings = append(settings, setting)
	}
	return settings, nil
}

func UpsertSeoSetting(ctx context.Context, setting models.SeoSetting) error {
	if !IsValidSeoPage(setting.PageId) {
		return ErrInvalidPageId
	}
	update := bson.M{"$set": bson.M{
		"title":       setting.Title,
		"description": setting.Description,
		"keywords":    setting.Keywords,
	}}
	coll := db.OpenCollections(util.SeoCollection)
	if _, err := db.UpsertOne(ctx, coll, bson.M{"_id": setting.PageId}, update); err != nil {
		log.Error().Err(err).Str("pageId", setting.PageId).Msg("failed to upsert seo setting")
		return err
	}
	return nil
}
