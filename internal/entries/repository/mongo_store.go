package repository

import (
	"context"
	"fmt"

	"github.com/GoSim-25-26J-441/mongo-gateway/internal/entries/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore handles MongoDB operations for entries
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore creates a store over an existing collection handle
func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

// NewMongoStoreFromClient binds the store to database/collection on client
func NewMongoStoreFromClient(client *mongo.Client, database, collection string) *MongoStore {
	return NewMongoStore(client.Database(database).Collection(collection))
}

func (s *MongoStore) Insert(ctx context.Context, entry domain.Entry) (string, error) {
	res, err := s.coll.InsertOne(ctx, entry)
	if err != nil {
		return "", fmt.Errorf("failed to insert entry: %w", err)
	}
	return stringifyID(res.InsertedID), nil
}

func (s *MongoStore) List(ctx context.Context, limit int64) ([]domain.Document, error) {
	cur, err := s.coll.Find(ctx, bson.D{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to find entries: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]domain.Document, 0, 16)
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to decode entry: %w", err)
		}
		out = append(out, toDocument(raw))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return out, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, readpref.Primary())
}

// toDocument rewrites _id to a string and flattens driver container types so
// the result encodes as plain JSON.
func toDocument(raw bson.M) domain.Document {
	doc := make(domain.Document, len(raw))
	for k, v := range raw {
		doc[k] = plainValue(v)
	}
	if id, ok := raw[domain.IDField]; ok {
		doc[domain.IDField] = stringifyID(id)
	}
	return doc
}

func plainValue(v interface{}) interface{} {
	switch t := v.(type) {
	case bson.M:
		m := make(map[string]interface{}, len(t))
		for k, inner := range t {
			m[k] = plainValue(inner)
		}
		return m
	case bson.D:
		m := make(map[string]interface{}, len(t))
		for _, e := range t {
			m[e.Key] = plainValue(e.Value)
		}
		return m
	case bson.A:
		a := make([]interface{}, len(t))
		for i, inner := range t {
			a[i] = plainValue(inner)
		}
		return a
	default:
		return v
	}
}

func stringifyID(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
