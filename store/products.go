package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/glasscart/storefront/catalog"
	"github.com/glasscart/storefront/models"
)

// ProductRepo executes catalog queries against the product
// collection.
type ProductRepo struct {
	c *mongo.Collection
}

func (s *Store) Products() *ProductRepo {
	return &ProductRepo{c: s.collection(models.ProductsCollection)}
}

// Search runs the filter, counts every match, then applies the page
// window. The count deliberately precedes skip/limit so total always
// reflects the whole filtered set.
func (r *ProductRepo) Search(ctx context.Context, q catalog.Query) (catalog.Page, error) {
	filter := q.Filter()

	total, err := r.c.CountDocuments(ctx, filter)
	if err != nil {
		return catalog.Page{}, fmt.Errorf("counting products: %w", err)
	}

	cur, err := r.c.Find(ctx, filter, q.FindOptions())
	if err != nil {
		return catalog.Page{}, fmt.Errorf("finding products: %w", err)
	}
	items := []models.Product{}
	if err := cur.All(ctx, &items); err != nil {
		return catalog.Page{}, fmt.Errorf("decoding products: %w", err)
	}

	return catalog.Page{Items: items, Page: q.Page, Limit: q.Limit, Total: total}, nil
}

func (r *ProductRepo) BySlug(ctx context.Context, slug string) (models.Product, error) {
	var p models.Product
	err := r.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("finding product %q: %w", slug, err)
	}
	return p, nil
}

// Related returns up to catalog.RelatedLimit products sharing the
// given product's category, excluding the product itself. Order is
// store-defined.
func (r *ProductRepo) Related(ctx context.Context, p models.Product) ([]models.Product, error) {
	filter := bson.M{"category": p.Category, "slug": bson.M{"$ne": p.Slug}}
	cur, err := r.c.Find(ctx, filter, options.Find().SetLimit(catalog.RelatedLimit))
	if err != nil {
		return nil, fmt.Errorf("finding related products: %w", err)
	}
	related := []models.Product{}
	if err := cur.All(ctx, &related); err != nil {
		return nil, fmt.Errorf("decoding related products: %w", err)
	}
	return related, nil
}

// Suggest returns up to catalog.SuggestLimit title/slug pairs whose
// title contains the term, for autocomplete.
func (r *ProductRepo) Suggest(ctx context.Context, term string) ([]catalog.Suggestion, error) {
	filter := bson.M{"title": primitive.Regex{Pattern: term, Options: "i"}}
	opts := options.Find().
		SetProjection(bson.M{"title": 1, "slug": 1}).
		SetLimit(catalog.SuggestLimit)
	cur, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("finding suggestions: %w", err)
	}
	suggestions := []catalog.Suggestion{}
	if err := cur.All(ctx, &suggestions); err != nil {
		return nil, fmt.Errorf("decoding suggestions: %w", err)
	}
	return suggestions, nil
}

// SetRating writes the derived rating fields onto a product. The id
// must be the hex form of the product's store identifier.
func (r *ProductRepo) SetRating(ctx context.Context, productID string, rating float64, count int) error {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return fmt.Errorf("parsing product id %q: %w", productID, err)
	}
	_, err = r.c.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"rating": rating, "rating_count": count}})
	if err != nil {
		return fmt.Errorf("updating product rating: %w", err)
	}
	return nil
}

func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	return r.c.CountDocuments(ctx, bson.M{})
}
