package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kyodera/kanjipath/pkg/graphio"
)

const orderingsCollection = "orderings"

// MongoStore persists orderings in a MongoDB collection, keyed by their
// UUID. Suitable for multi-instance server deployments.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", uri, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping %s: %w", uri, err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(orderingsCollection),
	}, nil
}

// Save upserts an ordering, assigning a UUID when it has none.
func (s *MongoStore) Save(ctx context.Context, o graphio.Ordering) (graphio.Ordering, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": o.ID}, o, opts); err != nil {
		return graphio.Ordering{}, fmt.Errorf("save ordering %s: %w", o.ID, err)
	}
	return o, nil
}

// Get returns the ordering with the given id.
func (s *MongoStore) Get(ctx context.Context, id string) (graphio.Ordering, error) {
	var o graphio.Ordering
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return graphio.Ordering{}, ErrNotFound
	}
	if err != nil {
		return graphio.Ordering{}, fmt.Errorf("get ordering %s: %w", id, err)
	}
	return o, nil
}

// List returns all orderings, newest first.
func (s *MongoStore) List(ctx context.Context) ([]graphio.Ordering, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list orderings: %w", err)
	}
	var out []graphio.Ordering
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode orderings: %w", err)
	}
	return out, nil
}

// Delete removes an ordering.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete ordering %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
