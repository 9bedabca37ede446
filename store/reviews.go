package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/glasscart/storefront/models"
)

type ReviewRepo struct {
	c *mongo.Collection
}

func (s *Store) Reviews() *ReviewRepo {
	return &ReviewRepo{c: s.collection(models.ReviewsCollection)}
}

func (r *ReviewRepo) Insert(ctx context.Context, rev models.Review) (string, error) {
	res, err := r.c.InsertOne(ctx, rev)
	if err != nil {
		return "", fmt.Errorf("inserting review: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// ByProduct returns every review for the product, newest first.
func (r *ReviewRepo) ByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.c.Find(ctx, bson.M{"product_id": productID}, opts)
	if err != nil {
		return nil, fmt.Errorf("finding reviews: %w", err)
	}
	reviews := []models.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decoding reviews: %w", err)
	}
	return reviews, nil
}
