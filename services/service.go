package services

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"VisionCare360/config/db"
	"VisionCare360/models"
	"VisionCare360/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidPrice = errors.New(util.INVALID_PRICE)
	ErrInvalidIcon  = errors.New(util.INVALID_ICON)
)

func FetchAllServices(ctx context.Context) ([]models.Service, error) {
	coll := db.OpenCollections(util.ServiceCollection)
	services := []models.Service{}
	if err := db.FindAll(ctx, coll, nil, nil, &services); err != nil {
		log.Error().Err(err).Msg("failed to fetch services")
		return nil, err
	}
	sort.SliceStable(services, func(i, j int) bool {
		return services[i].CreatedAt.After(services[j].CreatedAt)
	})
	return services, nil
}

/*
* Price stays a free-text string in the document but must parse as a
* number at submit time, matching the admin form's only check
 */
func validateService(service models.Service) error {
	if service.Title == "" || service.Description == "" {
		return ErrMissingFields
	}
	if !util.IsValidIcon(service.Icon) {
		return ErrInvalidIcon
	}
	if service.Price != "" {
		if _, err := strconv.ParseFloat(service.Price, 64); err != nil {
			return ErrInvalidPrice
		}
	}
	return nil
}

func CreateService(ctx context.Context, service models.Service) (models.Service, error) {
	if err := validateService(service); err != nil {
		return models.Service{}, err
	}
	service.ID = primitive.NewObjectID()
	service.CreatedAt = time.Now().UTC()
	service.UpdatedAt = service.CreatedAt

	coll := db.OpenCollections(util.ServiceCollection)
	if _, err := db.CreateOne(ctx, coll, service); err != nil {
		log.Error().Err(err).Msg("failed to create service")
		return models.Service{}, err
	}
	return service, nil
}

func UpdateService(ctx context.Context, id string, service models.Service) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}
	if err := validateService(service); err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"title":       service.Title,
		"description": service.Description,
		"icon":        service.Icon,
		"price":       service.Price,
		"features":    service.Features,
		"updatedAt":   time.Now().UTC(),
	}}

	coll := db.OpenCollections(util.ServiceCollection)
	res, err := db.UpdateOne(ctx, coll, bson.M{"_id": oid}, update)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update service")
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteService(ctx context.Context, id string) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}
	coll := db.OpenCollections(util.ServiceCollection)
	res, err := db.DeleteOne(ctx, coll, bson.M{"_id": oid})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete service")
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func SeedDefaultServices(ctx context.Context) (int, error) {
	now := time.Now().UTC()
	docs := make([]interface{}, 0, 6)
	for _, s := range DefaultServices() {
		s.ID = primitive.NewObjectID()
		s.CreatedAt = now
		s.UpdatedAt = now
		docs = append(docs, s)
	}
	coll := db.OpenCollections(util.ServiceCollection)
	res, err := db.CreateMany(ctx, coll, docs)
	if err != nil {
		log.Error().Err(err).Msg("failed to seed default services")
		return 0, err
	}
	return len(res.InsertedIDs), nil
}
