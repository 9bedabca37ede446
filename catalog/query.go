// Package catalog translates storefront query parameters into the
// filter, sort, and page window executed against the product
// collection.
package catalog

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/glasscart/storefront/models"
)

const (
	DefaultPage  = 1
	DefaultLimit = 12

	// RelatedLimit caps the related-products list on a product page,
	// SuggestLimit the autocomplete suggestion list.
	RelatedLimit = 8
	SuggestLimit = 8
)

// Sort keys accepted by the products endpoint. Anything else leaves
// the order store-defined.
const (
	SortPriceAsc   = "price_asc"
	SortPriceDesc  = "price_desc"
	SortRatingDesc = "rating_desc"
)

// ErrNegativePrice rejects price bounds below zero before the store
// is touched.
var ErrNegativePrice = errors.New("min_price and max_price must be non-negative")

// Query is the full set of optional list-products parameters. Nil
// price bounds impose no constraint. Page is 1-indexed and passed
// through unclamped, matching the behavior the frontend depends on.
type Query struct {
	Q        string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Page     int
	Limit    int
	Sort     string
}

// Validate checks the numeric bounds. Only supplied bounds are
// checked; ordering of min against max is left to the store, which
// simply matches nothing when the range is empty.
func (q Query) Validate() error {
	if q.MinPrice != nil && *q.MinPrice < 0 {
		return ErrNegativePrice
	}
	if q.MaxPrice != nil && *q.MaxPrice < 0 {
		return ErrNegativePrice
	}
	return nil
}

// Filter builds the conjunctive document filter from whichever
// parameters are present. An empty Query matches everything.
func (q Query) Filter() bson.M {
	filter := bson.M{}
	if q.Q != "" {
		re := primitive.Regex{Pattern: q.Q, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"description": re},
			bson.M{"tags": re},
		}
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.MinPrice != nil || q.MaxPrice != nil {
		price := bson.M{}
		if q.MinPrice != nil {
			price["$gte"] = *q.MinPrice
		}
		if q.MaxPrice != nil {
			price["$lte"] = *q.MaxPrice
		}
		filter["price"] = price
	}
	return filter
}

// SortSpec returns the sort document for the requested order, or nil
// for store-defined natural order.
func (q Query) SortSpec() bson.D {
	switch q.Sort {
	case SortPriceAsc:
		return bson.D{{Key: "price", Value: 1}}
	case SortPriceDesc:
		return bson.D{{Key: "price", Value: -1}}
	case SortRatingDesc:
		return bson.D{{Key: "rating", Value: -1}}
	}
	return nil
}

// Skip is the page window offset: (page-1)*limit. Pages below 1
// produce a negative offset the store will refuse, again matching the
// source system rather than clamping.
func (q Query) Skip() int64 {
	return int64(q.Page-1) * int64(q.Limit)
}

// FindOptions assembles sort, skip, and limit for execution.
func (q Query) FindOptions() *options.FindOptions {
	opts := options.Find().SetSkip(q.Skip()).SetLimit(int64(q.Limit))
	if sort := q.SortSpec(); sort != nil {
		opts.SetSort(sort)
	}
	return opts
}

// Page is one window of the filtered, sorted product list. Total
// counts every document matching the filter, not just this window.
type Page struct {
	Items []models.Product `json:"items"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
	Total int64            `json:"total"`
}

// Suggestion is the lightweight autocomplete shape.
type Suggestion struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}
