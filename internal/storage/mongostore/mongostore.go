// Package mongostore persists gateway records as documents in a MongoDB collection.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"budgetly/internal/storage"
)

// CollectionName is the collection holding gateway records.
const CollectionName = "records"

type document struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Store is a MongoDB-backed storage.Gateway.
type Store struct {
	coll *mongo.Collection
}

// Connect opens a client and pings the primary.
func Connect(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storage.DefaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// New creates a Store on the records collection of database.
func New(client *mongo.Client, database string) *Store {
	return &Store{coll: client.Database(database).Collection(CollectionName)}
}

var _ storage.Gateway = (*Store)(nil)

// Save upserts the document for key.
func (s *Store) Save(key string, value any) error {
	data, err := storage.Encode(value)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), storage.DefaultTimeout)
	defer cancel()

	doc := document{Key: key, Value: string(data), UpdatedAt: time.Now().UTC()}
	_, err = s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Load reads the document for key into dest.
func (s *Store) Load(key string, dest any) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storage.DefaultTimeout)
	defer cancel()

	var doc document
	if err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := storage.Decode([]byte(doc.Value), dest); err != nil {
		return false, err
	}
	return true, nil
}

// Close disconnects the client that owns the collection.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), storage.DefaultTimeout)
	defer cancel()
	return s.coll.Database().Client().Disconnect(ctx)
}
