package db

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

/*
* Connect to Mongo with the URI and database name from env
* Ping before handing the database out so a bad URI fails at startup
 */
func Connect() error {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "visioncare"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	Client = client
	DB = client.Database(dbName)
	log.Info().Str("db", dbName).Msg("connected to mongo")
	return nil
}

func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}

func OpenCollections(name string) *mongo.Collection {
	return DB.Collection(name)
}

func FindOne(ctx context.Context, coll *mongo.Collection, filter bson.M, result interface{}) error {
	return coll.FindOne(ctx, filter).Decode(result)
}

/*
* Fetch every document matching the filter
* opts carries the optional sort; most screens sort in the service instead
 */
func FindAll(ctx context.Context, coll *mongo.Collection, filter bson.M, opts *options.FindOptions, results interface{}) error {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, results)
}

func CreateOne(ctx context.Context, coll *mongo.Collection, doc interface{}) (*mongo.InsertOneResult, error) {
	return coll.InsertOne(ctx, doc)
}

/*
* Ordered InsertMany so a bulk seed either lands whole or stops at the
* first failure without retrying the remainder out of order
 */
func CreateMany(ctx context.Context, coll *mongo.Collection, docs []interface{}) (*mongo.InsertManyResult, error) {
	return coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
}

func UpdateOne(ctx context.Context, coll *mongo.Collection, filter bson.M, update bson.M) (*mongo.UpdateResult, error) {
	return coll.UpdateOne(ctx, filter, update)
}

func UpsertOne(ctx context.Context, coll *mongo.Collection, filter bson.M, update bson.M) (*mongo.UpdateResult, error) {
	return coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
}

func DeleteOne(ctx context.Context, coll *mongo.Collection, filter bson.M) (*mongo.DeleteResult, error) {
	return coll.DeleteOne(ctx, filter)
}

func CountDocuments(ctx context.Context, coll *mongo.Collection, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return coll.CountDocuments(ctx, filter)
}

/*
* Open a change stream on the collection, inserts/updates/deletes only
 */
func Watch(ctx context.Context, coll *mongo.Collection) (*mongo.ChangeStream, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"operationType": bson.M{"$in": []string{"insert", "update", "replace", "delete"}},
		}}},
	}
	return coll.Watch(ctx, pipeline)
}
