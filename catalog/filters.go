package catalog

import (
	"net/url"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const featuredLimit = 6

// Filter builders translate query parameters into mongo filters. Kept apart
// from the handlers so the query surface stays visible in one place.

func destinationFilter(q url.Values) (bson.M, *options.FindOptions) {
	filter := bson.M{}
	opts := options.Find().SetSort(bson.D{
		{Key: "featured", Value: -1},
		{Key: "name", Value: 1},
	})
	if q.Get("featured") == "true" {
		filter["featured"] = true
		opts.SetLimit(featuredLimit)
	}
	if country := q.Get("country"); country != "" {
		filter["country"] = country
	}
	return filter, opts
}

func activityFilter(q url.Values) (bson.M, *options.FindOptions) {
	filter := bson.M{}
	if dest := q.Get("destination_id"); dest != "" {
		filter["destinationid"] = dest
	}
	if category := q.Get("category"); category != "" {
		filter["category"] = category
	}
	return filter, ratingSorted()
}

func hotelFilter(q url.Values) (bson.M, *options.FindOptions) {
	filter := bson.M{}
	if dest := q.Get("destination_id"); dest != "" {
		filter["destinationid"] = dest
	}
	return filter, ratingSorted()
}

func placeFilter(q url.Values) (bson.M, *options.FindOptions) {
	filter := bson.M{}
	if province := q.Get("province"); province != "" {
		filter["province"] = province
	}
	if category := q.Get("category"); category != "" {
		filter["category"] = category
	}
	return filter, ratingSorted()
}

func restaurantFilter(q url.Values) (bson.M, *options.FindOptions) {
	filter := bson.M{}
	if dest := q.Get("destination_id"); dest != "" {
		filter["destinationid"] = dest
	}
	if cuisine := q.Get("cuisine"); cuisine != "" {
		filter["cuisine"] = cuisine
	}
	return filter, ratingSorted()
}

func ratingSorted() *options.FindOptions {
	return options.Find().SetSort(bson.D{
		{Key: "rating", Value: -1},
		{Key: "name", Value: 1},
	})
}
