package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/retronotes/retronotes/internal/common"
	"github.com/retronotes/retronotes/internal/server/storage"
)

// MongoRepository stores users in a MongoDB collection. Uniqueness of
// email_lower/username_lower is backed by the unique indexes declared in
// storage.EnsureIndexes.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(m *storage.Mongo) *MongoRepository {
	return &MongoRepository{col: m.Collection(storage.UsersCollection)}
}

func (r *MongoRepository) Create(ctx context.Context, user *User) (*User, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		if storage.IsDuplicateKey(err) {
			return nil, ErrIdentityTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (r *MongoRepository) FindByIdentifier(ctx context.Context, identifierLower string) (*User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"email_lower": identifierLower},
		bson.M{"username_lower": identifierLower},
	}}

	user := &User{}
	err := r.col.FindOne(ctx, filter).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return user, nil
}

func (r *MongoRepository) UsernameExists(ctx context.Context, usernameLower string) (bool, error) {
	return r.exists(ctx, bson.M{"username_lower": usernameLower})
}

func (r *MongoRepository) IdentityExists(ctx context.Context, emailLower, usernameLower string) (bool, error) {
	return r.exists(ctx, bson.M{"$or": bson.A{
		bson.M{"email_lower": emailLower},
		bson.M{"username_lower": usernameLower},
	}})
}

func (r *MongoRepository) exists(ctx context.Context, filter bson.M) (bool, error) {
	n, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}
