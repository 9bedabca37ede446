// Package store is the document-store adapter. Collections are
// addressed by name and exposed through small per-collection
// repositories; all persistence goes through here.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("not found")
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects to the document store and verifies the connection
// with a ping before returning.
func Open(ctx context.Context, uri, name string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to store: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging store: %w", err)
	}
	slog.Info("connected to document store", "database", name)
	return &Store{client: client, db: client.Database(name)}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// CollectionNames lists the collections currently present, for the
// diagnostic endpoint.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}

func (s *Store) collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}
