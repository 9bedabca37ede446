package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/glasscart/storefront/models"
)

type CategoryRepo struct {
	c *mongo.Collection
}

func (s *Store) Categories() *CategoryRepo {
	return &CategoryRepo{c: s.collection(models.CategoriesCollection)}
}

func (r *CategoryRepo) All(ctx context.Context) ([]models.Category, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("finding categories: %w", err)
	}
	categories := []models.Category{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decoding categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepo) Count(ctx context.Context) (int64, error) {
	return r.c.CountDocuments(ctx, bson.M{})
}
