package search

import (
	"context"
	"regexp"
	"wandervoice/db"
	"wandervoice/models"
	"wandervoice/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewService wires the fan-out to the live Mongo collections.
func NewService() *Service {
	return &Service{
		Destinations: func(ctx context.Context, q string) ([]models.Destination, error) {
			return fetchMatches[models.Destination](ctx, db.DestinationsCollection, q, "name", "description", "country")
		},
		Activities: func(ctx context.Context, q string) ([]models.Activity, error) {
			return fetchMatches[models.Activity](ctx, db.ActivitiesCollection, q, "name", "description")
		},
		Hotels: func(ctx context.Context, q string) ([]models.Hotel, error) {
			return fetchMatches[models.Hotel](ctx, db.HotelsCollection, q, "name", "description")
		},
		Places: func(ctx context.Context, q string) ([]models.Place, error) {
			return fetchMatches[models.Place](ctx, db.PlacesCollection, q, "name", "description")
		},
		Restaurants: func(ctx context.Context, q string) ([]models.Restaurant, error) {
			return fetchMatches[models.Restaurant](ctx, db.RestaurantsCollection, q, "name", "description")
		},
	}
}

// fetchMatches does a case-insensitive partial match on the given fields,
// capped at ResultLimit.
func fetchMatches[T any](ctx context.Context, coll *mongo.Collection, query string, fields ...string) ([]T, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	or := make([]bson.M, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: pattern})
	}

	opts := options.Find().SetLimit(ResultLimit)
	return utils.FindAndDecode[T](ctx, coll, bson.M{"$or": or}, opts)
}
