package reviews

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/glasscart/storefront/models"
)

// --- Mock stores ---

type mockReviewStore struct {
	stored    []models.Review
	insertErr error
	readErr   error
}

func (m *mockReviewStore) Insert(_ context.Context, r models.Review) (string, error) {
	if m.insertErr != nil {
		return "", m.insertErr
	}
	m.stored = append(m.stored, r)
	return "rev123", nil
}

func (m *mockReviewStore) ByProduct(_ context.Context, productID string) ([]models.Review, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	var out []models.Review
	for _, r := range m.stored {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

type mockRatingStore struct {
	productID string
	rating    float64
	count     int
	calls     int
	err       error
}

func (m *mockRatingStore) SetRating(_ context.Context, productID string, rating float64, count int) error {
	if m.err != nil {
		return m.err
	}
	m.productID = productID
	m.rating = rating
	m.count = count
	m.calls++
	return nil
}

func newTestAggregator(rs ReviewStore, ps *mockRatingStore) *Aggregator {
	a := NewAggregator(rs, ps)
	a.now = func() time.Time { return time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC) }
	return a
}

// --- Tests ---

func TestSubmitRejectsOutOfRangeRating(t *testing.T) {
	for _, rating := range []int{0, -1, 6, 100} {
		rs := &mockReviewStore{}
		ps := &mockRatingStore{}
		a := newTestAggregator(rs, ps)

		_, err := a.Submit(context.Background(), "p1", Submission{ProductID: "p1", Rating: rating})

		assert.ErrorIs(t, err, ErrRatingOutOfRange)
		assert.Empty(t, rs.stored, "no review may be created for rating %d", rating)
		assert.Zero(t, ps.calls)
	}
}

func TestSubmitRejectsMismatchedProductID(t *testing.T) {
	rs := &mockReviewStore{}
	ps := &mockRatingStore{}
	a := newTestAggregator(rs, ps)

	_, err := a.Submit(context.Background(), "p1", Submission{ProductID: "p2", Rating: 4})

	assert.ErrorIs(t, err, ErrProductMismatch)
	assert.Empty(t, rs.stored)
}

func TestSubmitPersistsAndRecomputesRating(t *testing.T) {
	rs := &mockReviewStore{}
	ps := &mockRatingStore{}
	a := newTestAggregator(rs, ps)

	id, err := a.Submit(context.Background(), "p1", Submission{
		ProductID: "p1",
		Rating:    4,
		Comment:   "solid",
		UserID:    "u1",
		UserName:  "Ada",
	})

	assert.NoError(t, err)
	assert.Equal(t, "rev123", id)
	assert.Len(t, rs.stored, 1)
	assert.Equal(t, "p1", rs.stored[0].ProductID)
	assert.Equal(t, "u1", rs.stored[0].UserID)
	assert.Equal(t, "Ada", rs.stored[0].UserName)
	assert.False(t, rs.stored[0].CreatedAt.IsZero(), "created_at is server-assigned")

	assert.Equal(t, 1, ps.calls)
	assert.Equal(t, "p1", ps.productID)
	assert.Equal(t, 4.0, ps.rating)
	assert.Equal(t, 1, ps.count)
}

func TestSubmitSequentialMeanRoundedToTwoDecimals(t *testing.T) {
	rs := &mockReviewStore{}
	ps := &mockRatingStore{}
	a := newTestAggregator(rs, ps)

	ratings := []int{5, 4, 4}
	for _, r := range ratings {
		_, err := a.Submit(context.Background(), "p1", Submission{ProductID: "p1", Rating: r})
		assert.NoError(t, err)
	}

	// mean(5,4,4) = 4.333... -> 4.33
	assert.Equal(t, 4.33, ps.rating)
	assert.Equal(t, 3, ps.count)
	assert.Equal(t, len(ratings), ps.calls)
}

func TestSubmitOnlyAggregatesTargetProduct(t *testing.T) {
	rs := &mockReviewStore{stored: []models.Review{
		{ProductID: "other", Rating: 1},
	}}
	ps := &mockRatingStore{}
	a := newTestAggregator(rs, ps)

	_, err := a.Submit(context.Background(), "p1", Submission{ProductID: "p1", Rating: 5})

	assert.NoError(t, err)
	assert.Equal(t, 5.0, ps.rating, "the other product's review must not enter the mean")
	assert.Equal(t, 1, ps.count)
}

func TestSubmitLeavesProductUntouchedOnEmptyReread(t *testing.T) {
	// Simulate the re-read finding nothing, as concurrent deletion
	// would: the insert is visible but the recompute set is empty.
	rs := &emptyRereadStore{}
	ps := &mockRatingStore{}
	a := newTestAggregator(rs, ps)

	id, err := a.Submit(context.Background(), "p1", Submission{ProductID: "p1", Rating: 3})

	assert.NoError(t, err)
	assert.Equal(t, "rev123", id)
	assert.Zero(t, ps.calls, "derived fields stay untouched when the re-read is empty")
}

type emptyRereadStore struct{}

func (e *emptyRereadStore) Insert(context.Context, models.Review) (string, error) {
	return "rev123", nil
}

func (e *emptyRereadStore) ByProduct(context.Context, string) ([]models.Review, error) {
	return nil, nil
}

func TestSubmitPropagatesStoreErrors(t *testing.T) {
	boom := errors.New("store down")

	rs := &mockReviewStore{insertErr: boom}
	a := newTestAggregator(rs, &mockRatingStore{})
	_, err := a.Submit(context.Background(), "p1", Submission{ProductID: "p1", Rating: 3})
	assert.ErrorIs(t, err, boom)

	rs = &mockReviewStore{readErr: boom}
	a = newTestAggregator(rs, &mockRatingStore{})
	_, err = a.Submit(context.Background(), "p1", Submission{ProductID: "p1", Rating: 3})
	assert.ErrorIs(t, err, boom)

	rs = &mockReviewStore{}
	ps := &mockRatingStore{err: boom}
	a = newTestAggregator(rs, ps)
	_, err = a.Submit(context.Background(), "p1", Submission{ProductID: "p1", Rating: 3})
	assert.ErrorIs(t, err, boom)
}

func TestListDelegatesToStore(t *testing.T) {
	rs := &mockReviewStore{stored: []models.Review{
		{ProductID: "p1", Rating: 5},
		{ProductID: "p2", Rating: 1},
		{ProductID: "p1", Rating: 3},
	}}
	a := newTestAggregator(rs, &mockRatingStore{})

	list, err := a.List(context.Background(), "p1")

	assert.NoError(t, err)
	assert.Len(t, list, 2)
	for _, r := range list {
		assert.Equal(t, "p1", r.ProductID)
	}
}
