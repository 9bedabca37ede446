// Package reviews appends product reviews and keeps the parent
// product's derived rating fields consistent with the full review
// set.
package reviews

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/glasscart/storefront/models"
)

var (
	// ErrRatingOutOfRange rejects ratings outside 1..5 before
	// anything is persisted.
	ErrRatingOutOfRange = errors.New("rating must be an integer between 1 and 5")
	// ErrProductMismatch is returned when the review body names a
	// different product than the one the request was made against.
	ErrProductMismatch = errors.New("mismatched product id")
)

// ReviewStore is the slice of the document store the aggregator
// reads and appends reviews through.
type ReviewStore interface {
	Insert(ctx context.Context, r models.Review) (string, error)
	ByProduct(ctx context.Context, productID string) ([]models.Review, error)
}

// RatingStore writes the recomputed rating fields onto a product.
type RatingStore interface {
	SetRating(ctx context.Context, productID string, rating float64, count int) error
}

// Submission is one incoming review. UserID/UserName are empty for
// anonymous submissions.
type Submission struct {
	ProductID string
	Rating    int
	Comment   string
	UserID    string
	UserName  string
}

type Aggregator struct {
	reviews ReviewStore
	ratings RatingStore
	now     func() time.Time
}

func NewAggregator(reviews ReviewStore, ratings RatingStore) *Aggregator {
	return &Aggregator{
		reviews: reviews,
		ratings: ratings,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Submit persists the review, then re-reads every review for the
// product and rewrites the product's rating (mean, rounded to two
// decimals) and rating_count. The two steps are not transactional:
// concurrent submissions for the same product can interleave and the
// last recompute wins. That matches the system this replaces and is
// left as-is on purpose.
func (a *Aggregator) Submit(ctx context.Context, productID string, sub Submission) (string, error) {
	if sub.Rating < 1 || sub.Rating > 5 {
		return "", ErrRatingOutOfRange
	}
	if sub.ProductID != productID {
		return "", ErrProductMismatch
	}

	id, err := a.reviews.Insert(ctx, models.Review{
		ProductID: productID,
		UserID:    sub.UserID,
		UserName:  sub.UserName,
		Rating:    sub.Rating,
		Comment:   sub.Comment,
		CreatedAt: a.now(),
	})
	if err != nil {
		return "", err
	}

	all, err := a.reviews.ByProduct(ctx, productID)
	if err != nil {
		return "", err
	}
	// An empty re-read right after a successful insert should not
	// happen; leave the product's derived fields untouched if it does.
	if len(all) > 0 {
		sum := 0
		for _, r := range all {
			sum += r.Rating
		}
		mean := round2(float64(sum) / float64(len(all)))
		if err := a.ratings.SetRating(ctx, productID, mean, len(all)); err != nil {
			return "", err
		}
	}
	return id, nil
}

// List returns every review for the product, newest first.
func (a *Aggregator) List(ctx context.Context, productID string) ([]models.Review, error) {
	return a.reviews.ByProduct(ctx, productID)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
