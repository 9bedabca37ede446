package store

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/glasscart/storefront/models"
)

// Seed populates the category and product collections with sample
// data, but only when each collection is empty. Calling it on a
// populated store is a no-op, so the endpoint stays idempotent.
func (s *Store) Seed(ctx context.Context) error {
	categories := s.collection(models.CategoriesCollection)
	n, err := categories.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("counting categories: %w", err)
	}
	if n == 0 {
		if _, err := categories.InsertMany(ctx, seedCategories()); err != nil {
			return fmt.Errorf("seeding categories: %w", err)
		}
		slog.Info("seeded categories", "count", len(seedCategories()))
	}

	products := s.collection(models.ProductsCollection)
	n, err = products.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("counting products: %w", err)
	}
	if n == 0 {
		if _, err := products.InsertMany(ctx, seedProducts()); err != nil {
			return fmt.Errorf("seeding products: %w", err)
		}
		slog.Info("seeded products", "count", len(seedProducts()))
	}
	return nil
}

func seedCategories() []any {
	return []any{
		models.Category{Name: "Cards", Slug: "cards", Image: "/cat-cards.jpg"},
		models.Category{Name: "Accessories", Slug: "accessories", Image: "/cat-accessories.jpg"},
		models.Category{Name: "Digital", Slug: "digital", Image: "/cat-digital.jpg"},
	}
}

func seedProducts() []any {
	return []any{
		models.Product{
			Title:       "Glass Credit Card",
			Slug:        "glass-credit-card",
			Description: "Minimal, premium glass-morphic card.",
			Price:       129.0,
			Images:      []string{"/prod-card-1.jpg", "/prod-card-2.jpg", "/prod-card-3.jpg"},
			Category:    "cards",
			Tags:        []string{"card", "glass", "fintech"},
			Variants: []models.Variant{
				{Name: "Color", Value: "Frost", SKU: "GC-FR", PriceDelta: 0, Stock: 25},
				{Name: "Color", Value: "Graphite", SKU: "GC-GR", PriceDelta: 10, Stock: 12},
			},
			Rating:      4.6,
			RatingCount: 42,
		},
		models.Product{
			Title:       "Metal Card Holder",
			Slug:        "metal-card-holder",
			Description: "Slim aluminum RFID-blocking holder.",
			Price:       49.0,
			Images:      []string{"/prod-holder-1.jpg", "/prod-holder-2.jpg"},
			Category:    "accessories",
			Tags:        []string{"holder", "rfid"},
			Variants: []models.Variant{
				{Name: "Color", Value: "Silver", SKU: "MH-SV", PriceDelta: 0, Stock: 40},
				{Name: "Color", Value: "Black", SKU: "MH-BK", PriceDelta: 0, Stock: 35},
			},
			Rating:      4.4,
			RatingCount: 26,
		},
		models.Product{
			Title:       "Virtual Card Subscription",
			Slug:        "virtual-card-subscription",
			Description: "Secure virtual cards for online purchases.",
			Price:       9.99,
			Images:      []string{"/prod-virtual-1.jpg"},
			Category:    "digital",
			Tags:        []string{"subscription", "virtual"},
			Variants:    []models.Variant{},
			Rating:      4.8,
			RatingCount: 61,
		},
	}
}
