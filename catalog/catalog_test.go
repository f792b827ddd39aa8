package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDestinationFilterFeatured(t *testing.T) {
	q := url.Values{"featured": {"true"}}

	filter, opts := destinationFilter(q)

	assert.Equal(t, bson.M{"featured": true}, filter)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(featuredLimit), *opts.Limit)

	sort, ok := opts.Sort.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "featured", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
}

func TestDestinationFilterUnfilteredHasNoLimit(t *testing.T) {
	filter, opts := destinationFilter(url.Values{})

	assert.Empty(t, filter)
	assert.Nil(t, opts.Limit)
}

func TestActivityFilterByDestinationAndCategory(t *testing.T) {
	q := url.Values{"destination_id": {"d1"}, "category": {"adventure"}}

	filter, opts := activityFilter(q)

	assert.Equal(t, bson.M{"destinationid": "d1", "category": "adventure"}, filter)
	sort, ok := opts.Sort.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "rating", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
}

func TestPlaceFilterByProvince(t *testing.T) {
	filter, _ := placeFilter(url.Values{"province": {"Phuket"}})

	assert.Equal(t, bson.M{"province": "Phuket"}, filter)
}

func TestRestaurantFilterByCuisine(t *testing.T) {
	filter, _ := restaurantFilter(url.Values{"destination_id": {"d1"}, "cuisine": {"Seafood"}})

	assert.Equal(t, bson.M{"destinationid": "d1", "cuisine": "Seafood"}, filter)
}

func TestHotelFilterEmptyByDefault(t *testing.T) {
	filter, _ := hotelFilter(url.Values{})

	assert.Empty(t, filter)
}

func TestEntityKindsCoverAllSourceTypes(t *testing.T) {
	for kind, meta := range entityKinds {
		assert.NotEmpty(t, meta.idField, "kind %s", kind)
	}
	assert.Len(t, entityKinds, 5)
}
