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

var ErrInvalidRating = errors.New(util.INVALID_RATING)

func FetchAllTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	coll := db.OpenCollections(util.TestimonialCollection)
	testimonials := []models.Testimonial{}
	if err := db.FindAll(ctx, coll, nil, nil, &testimonials); err != nil {
		log.Error().Err(err).Msg("failed to fetch testimonials")
		return nil, err
	}
	sort.SliceStable(testimonials, func(i, j int) bool {
		return testimonials[i].CreatedAt.After(testimonials[j].CreatedAt)
	})
	return testimonials, nil
}

func CreateTestimonial(ctx context.Context, testimonial models.Testimonial) (models.Testimonial, error) {
	if testimonial.Name == "" || testimonial.Content == "" {
		return models.Testimonial{}, ErrMissingFields
	}
	if testimonial.Rating < 1 || testimonial.Rating > 5 {
		return models.Testimonial{}, ErrInvalidRating
	}
	testimonial.ID = primitive.NewObjectID()
	testimonial.CreatedAt = time.Now().UTC()
	testimonial.UpdatedAt = testimonial.CreatedAt

	coll := db.OpenCollections(util.TestimonialCollection)
	if _, err := db.CreateOne(ctx, coll, testimonial); err != nil {
		log.Error().Err(err).Msg("failed to create testimonial")
		return models.Testimonial{}, err
	}
	return testimonial, nil
}

func UpdateTestimonial(ctx context.Context, id string, testimonial models.Testimonial) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}
	if testimonial.Rating < 1 || testimonial.Rating > 5 {
		return ErrInvalidRating
	}

	update := bson.M{"$set": bson.M{
		"name":      testimonial.Name,
		"role":      testimonial.Role,
		"content":   testimonial.Content,
		"rating":    testimonial.Rating,
		"updatedAt": time.Now().UTC(),
	}}

	coll := db.OpenCollections(util.TestimonialCollection)
	res, err := db.UpdateOne(ctx, coll, bson.M{"_id": oid}, update)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update testimonial")
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteTestimonial(ctx context.Context, id string) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}
	coll := db.OpenCollections(util.TestimonialCollection)
	res, err := db.DeleteOne(ctx, coll, bson.M{"_id": oid})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete testimonial")
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func SeedDefaultTestimonials(ctx context.Context) (int, error) {
	now := time.Now().UTC()
	docs := make([]interface{}, 0, 3)
	for _, t := range DefaultTestimonials() {
		t.ID = primitive.NewObjectID()
		t.CreatedAt = now
		t.UpdatedAt = now
		docs = append(docs, t)
	}
	coll := db.OpenCollections(util.TestimonialCollection)
	res, err := db.CreateMany(ctx, coll, docs)
	if err != nil {
		log.Error().Err(err).Msg("failed to seed default testimonials")
		return 0, err
	}
	return len(res.InsertedIDs), nil
}
