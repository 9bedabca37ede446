package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/glasscart/storefront/models"
)

type OrderRepo struct {
	c *mongo.Collection
}

func (s *Store) Orders() *OrderRepo {
	return &OrderRepo{c: s.collection(models.OrdersCollection)}
}

// Insert stores the order exactly as captured. Totals are not
// recomputed server-side.
func (r *OrderRepo) Insert(ctx context.Context, o models.Order) (string, error) {
	res, err := r.c.InsertOne(ctx, o)
	if err != nil {
		return "", fmt.Errorf("inserting order: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}
