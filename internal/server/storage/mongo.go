// Package storage owns the MongoDB client lifecycle: connect at process
// start, index bootstrap, and graceful disconnect. The handle is constructed
// once and passed down explicitly; there is no package-level client.
package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// Collection names of the two durable collections.
const (
	UsersCollection = "users"
	NotesCollection = "notes"
)

// Mongo wraps a connected client scoped to one database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the MongoDB deployment at uri and verifies the connection
// with a ping before returning.
func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

// Collection returns a handle to the named collection.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// EnsureIndexes declares the indexes the services rely on:
//
//   - unique indexes on users.email_lower and users.username_lower, the
//     storage-level line of defense against two registrations racing for the
//     same identity;
//   - a compound index on notes.owner_id + created_at for the per-owner,
//     newest-first list query.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := m.Collection(UsersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email_lower", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "username_lower", Value: 1}}, Options: unique},
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	_, err = m.Collection(NotesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("notes indexes: %w", err)
	}

	return nil
}

// IsDuplicateKey reports whether err is a unique-index violation
// (Mongo error code 11000).
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
