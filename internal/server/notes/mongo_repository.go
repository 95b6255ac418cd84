package notes

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/retronotes/retronotes/internal/server/storage"
)

// MongoRepository stores notes in a MongoDB collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(m *storage.Mongo) *MongoRepository {
	return &MongoRepository{col: m.Collection(storage.NotesCollection)}
}

func (r *MongoRepository) Create(ctx context.Context, note *Note) (*Note, error) {
	now := time.Now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}

	note.ID = res.InsertedID.(primitive.ObjectID)
	return note, nil
}

func (r *MongoRepository) ListByOwner(ctx context.Context, ownerID string) ([]Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := r.col.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find notes: %w", err)
	}
	defer cur.Close(ctx)

	notes := []Note{}
	if err := cur.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}

	return notes, nil
}

func (r *MongoRepository) Delete(ctx context.Context, ownerID, noteID string) error {
	oid, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		// a malformed id can never match a stored note
		return ErrNoteNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNoteNotFound
	}

	return nil
}
