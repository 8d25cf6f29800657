package migrations

import (
	"context"
	"strconv"

	"VisionCare360/config/db"
	"VisionCare360/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

// Early reels were saved with the views field as a string straight from
// the form input. Convert them to ints so the typed decode works.
func NormalizeReelViews() {
	ctx := context.Background()
	coll := db.DB.Collection(util.ReelCollection)

	cursor, err := coll.Find(ctx, bson.M{"views": bson.M{"$type": "string"}})
	if err != nil {
		log.Error().Err(err).Msg("reel views scan failed")
		return
	}
	defer cursor.Close(ctx)

	var fixed int64
	for cursor.Next(ctx) {
		var doc struct {
			ID    interface{} `bson:"_id"`
			Views string      `bson:"views"`
		}
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		views, err := strconv.Atoi(doc.Views)
		if err != nil {
			views = 0
		}
		if _, err := coll.UpdateOne(ctx, bson.M{"_id": doc.ID}, bson.M{"$set": bson.M{"views": views}}); err != nil {
			log.Error().Err(err).Msg("reel views update failed")
			continue
		}
		fixed++
	}
	log.Info().Int64("updated", fixed).Msg("reel views normalized")
}
