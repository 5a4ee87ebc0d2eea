package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/teamcut/teamcut/pkg/observability"
)

// MongoConfig configures the MongoDB-backed store.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// MongoStore persists records in a MongoDB collection, keyed by record ID.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection.
// Database defaults to "teamcut" and collection to "results".
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "teamcut"
	}
	if cfg.Collection == "" {
		cfg.Collection = "results"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Put stores a record, replacing any record with the same ID.
func (s *MongoStore) Put(ctx context.Context, rec Record) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": rec.ID}, rec, opts); err != nil {
		return fmt.Errorf("store record %s: %w", rec.ID, err)
	}
	observability.Store().OnPut(ctx, "mongo", len(rec.Teams))
	return nil
}

// Get retrieves a record by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (Record, error) {
	var rec Record
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		observability.Store().OnGet(ctx, "mongo", false)
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("get record %s: %w", id, err)
	}
	observability.Store().OnGet(ctx, "mongo", true)
	return rec, nil
}

// List returns all records, newest first.
func (s *MongoStore) List(ctx context.Context) ([]Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer cur.Close(ctx)

	var out []Record
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return out, nil
}

// Delete removes a record.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}
	observability.Store().OnDelete(ctx, "mongo")
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
