package migrations

import (
	"context"

	"VisionCare360/config/db"
	"VisionCare360/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

// Contact documents written before the read-tracking flag existed have
// no isRead field at all; the dashboard treats absent as unread, but a
// materialized false keeps queries simple.
func BackfillIsReadOnContacts() {
	ctx := context.Background()
	result, err := db.DB.Collection(util.ContactCollection).UpdateMany(
		ctx,
		bson.M{"isRead": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"isRead": false}},
	)
	if err != nil {
		log.Error().Err(err).Msg("isRead backfill failed")
		return
	}
	log.Info().Int64("updated", result.ModifiedCount).Msg("isRead backfill applied")
}
