package knowledge

import (
	"context"

	"support-assistant/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRetriever finds documents via a text index on the documents
// collection.
type MongoRetriever struct {
	coll *mongo.Collection
}

// NewMongoRetriever returns a Retriever backed by MongoDB.
func NewMongoRetriever(dbName string) *MongoRetriever {
	db := database.MongoClient.Database(dbName)
	return &MongoRetriever{
		coll: db.Collection("documents"),
	}
}

func (r *MongoRetriever) Retrieve(ctx context.Context, query string, limit int) ([]Document, error) {
	filter := bson.M{"$text": bson.M{"$search": query}}
	opts := options.Find().
		SetSort(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
