package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps one document per key in a single collection. The
// stored value is the raw JSON blob; mongo is a dumb byte bucket here,
// not a queried document store.
type MongoStore struct {
	collection *mongo.Collection
}

type storedDoc struct {
	Key  string `bson:"_id"`
	Data []byte `bson:"data"`
}

func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{collection: client.Database(database).Collection("kv")}
}

func (s *MongoStore) Load(ctx context.Context, key string) ([]byte, error) {
	var doc storedDoc
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find failed: %w", err)
	}
	return doc.Data, nil
}

func (s *MongoStore) Save(ctx context.Context, key string, value []byte) error {
	filter := bson.M{"_id": key}
	update := bson.M{"$set": bson.M{"data": value}}
	opts := options.Update().SetUpsert(true)

	if _, err := s.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("mongo upsert failed: %w", err)
	}
	return nil
}
