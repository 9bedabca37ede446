package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/glasscart/storefront/models"
)

type UserRepo struct {
	c *mongo.Collection
}

func (s *Store) Users() *UserRepo {
	return &UserRepo{c: s.collection(models.UsersCollection)}
}

// ByEmail matches the address exactly as stored; lookups are
// case-sensitive.
func (r *UserRepo) ByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.c.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("finding user by email: %w", err)
	}
	return u, nil
}

// ByID resolves a token subject back to its user. Malformed ids are
// reported as not found rather than as store errors.
func (r *UserRepo) ByID(ctx context.Context, id string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrNotFound
	}
	var u models.User
	err = r.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("finding user by id: %w", err)
	}
	return u, nil
}

func (r *UserRepo) Insert(ctx context.Context, u models.User) (string, error) {
	res, err := r.c.InsertOne(ctx, u)
	if err != nil {
		return "", fmt.Errorf("inserting user: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}
