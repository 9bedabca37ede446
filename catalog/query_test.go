package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func floatPtr(f float64) *float64 { return &f }

func TestQueryFilter(t *testing.T) {
	testCases := []struct {
		name     string
		query    Query
		expected bson.M
	}{
		{
			name:     "empty query matches everything",
			query:    Query{},
			expected: bson.M{},
		},
		{
			name:  "free text matches title description and tags",
			query: Query{Q: "card"},
			expected: bson.M{
				"$or": bson.A{
					bson.M{"title": primitive.Regex{Pattern: "card", Options: "i"}},
					bson.M{"description": primitive.Regex{Pattern: "card", Options: "i"}},
					bson.M{"tags": primitive.Regex{Pattern: "card", Options: "i"}},
				},
			},
		},
		{
			name:     "category is exact match",
			query:    Query{Category: "cards"},
			expected: bson.M{"category": "cards"},
		},
		{
			name:     "min price only",
			query:    Query{MinPrice: floatPtr(100)},
			expected: bson.M{"price": bson.M{"$gte": 100.0}},
		},
		{
			name:     "max price only",
			query:    Query{MaxPrice: floatPtr(50)},
			expected: bson.M{"price": bson.M{"$lte": 50.0}},
		},
		{
			name:  "closed price range",
			query: Query{MinPrice: floatPtr(100), MaxPrice: floatPtr(150)},
			expected: bson.M{
				"price": bson.M{"$gte": 100.0, "$lte": 150.0},
			},
		},
		{
			name:  "supplied filters combine with AND",
			query: Query{Q: "glass", Category: "cards", MaxPrice: floatPtr(150)},
			expected: bson.M{
				"$or": bson.A{
					bson.M{"title": primitive.Regex{Pattern: "glass", Options: "i"}},
					bson.M{"description": primitive.Regex{Pattern: "glass", Options: "i"}},
					bson.M{"tags": primitive.Regex{Pattern: "glass", Options: "i"}},
				},
				"category": "cards",
				"price":    bson.M{"$lte": 150.0},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.query.Filter())
		})
	}
}

func TestQuerySortSpec(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "price", Value: 1}}, Query{Sort: SortPriceAsc}.SortSpec())
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, Query{Sort: SortPriceDesc}.SortSpec())
	assert.Equal(t, bson.D{{Key: "rating", Value: -1}}, Query{Sort: SortRatingDesc}.SortSpec())
	assert.Nil(t, Query{}.SortSpec())
	assert.Nil(t, Query{Sort: "name_asc"}.SortSpec())
}

func TestQuerySkip(t *testing.T) {
	testCases := []struct {
		name        string
		page, limit int
		expected    int64
	}{
		{"first page", 1, 12, 0},
		{"second page", 2, 12, 12},
		{"custom limit", 3, 5, 10},
		{"page zero passes through unclamped", 0, 12, -12},
		{"negative page passes through unclamped", -1, 12, -24},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := Query{Page: tc.page, Limit: tc.limit}
			assert.Equal(t, tc.expected, q.Skip())
		})
	}
}

func TestQueryValidate(t *testing.T) {
	assert.NoError(t, Query{}.Validate())
	assert.NoError(t, Query{MinPrice: floatPtr(0), MaxPrice: floatPtr(0)}.Validate())
	assert.NoError(t, Query{MinPrice: floatPtr(100), MaxPrice: floatPtr(150)}.Validate())
	// Ordering of min against max is not the engine's concern.
	assert.NoError(t, Query{MinPrice: floatPtr(150), MaxPrice: floatPtr(100)}.Validate())

	assert.ErrorIs(t, Query{MinPrice: floatPtr(-1)}.Validate(), ErrNegativePrice)
	assert.ErrorIs(t, Query{MaxPrice: floatPtr(-0.01)}.Validate(), ErrNegativePrice)
}

func TestQueryFindOptions(t *testing.T) {
	opts := Query{Page: 2, Limit: 12, Sort: SortPriceAsc}.FindOptions()

	assert.Equal(t, int64(12), *opts.Skip)
	assert.Equal(t, int64(12), *opts.Limit)
	assert.Equal(t, bson.D{{Key: "price", Value: 1}}, opts.Sort)

	natural := Query{Page: 1, Limit: 12}.FindOptions()
	assert.Equal(t, int64(0), *natural.Skip)
	assert.Nil(t, natural.Sort)
}
