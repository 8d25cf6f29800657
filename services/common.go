package services

import (
	"errors"

	"VisionCare360/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound      = errors.New(util.DOCUMENT_NOT_FOUND)
	ErrMissingFields = errors.New(util.REQUIRED_FIELD_MISSING)
)

// A malformed id can never match a document, so it reads as not found
// rather than as a distinct error.
func objectIDFromHex(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}
