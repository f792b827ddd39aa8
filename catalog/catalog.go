package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"
	"wandervoice/db"
	"wandervoice/models"
	"wandervoice/rdx"
	"wandervoice/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const listTimeout = 5 * time.Second

func listEntities[T any](w http.ResponseWriter, r *http.Request, coll *mongo.Collection,
	buildFilter func(url.Values) (bson.M, *options.FindOptions), label string) {

	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()

	filter, opts := buildFilter(r.URL.Query())
	items, err := utils.FindAndDecode[T](ctx, coll, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch "+label)
		return
	}
	if items == nil {
		items = []T{}
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

func getEntity[T any](w http.ResponseWriter, r *http.Request, coll *mongo.Collection, idField, id, label string) {
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()

	var item T
	err := coll.FindOne(ctx, bson.M{idField: id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithError(w, http.StatusNotFound, label+" not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch "+label)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, item)
}

// GET /api/destinations
// Featured destinations change rarely, so that variant sits behind a short
// redis cache.
func GetDestinations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if r.URL.Query().Get("featured") == "true" {
		var cached []models.Destination
		if rdx.GetInto("catalog:destinations:featured", &cached) {
			utils.RespondWithJSON(w, http.StatusOK, cached)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
		defer cancel()

		filter, opts := destinationFilter(r.URL.Query())
		items, err := utils.FindAndDecode[models.Destination](ctx, db.DestinationsCollection, filter, opts)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch destinations")
			return
		}
		if items == nil {
			items = []models.Destination{}
		}
		rdx.SetWithExpiry("catalog:destinations:featured", items, 2*time.Minute)
		utils.RespondWithJSON(w, http.StatusOK, items)
		return
	}

	listEntities[models.Destination](w, r, db.DestinationsCollection, destinationFilter, "destinations")
}

func GetDestination(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	getEntity[models.Destination](w, r, db.DestinationsCollection, "destinationid", ps.ByName("destinationid"), "Destination")
}

// GET /api/activities
func GetActivities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	listEntities[models.Activity](w, r, db.ActivitiesCollection, activityFilter, "activities")
}

func GetActivity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	getEntity[models.Activity](w, r, db.ActivitiesCollection, "activityid", ps.ByName("activityid"), "Activity")
}

// GET /api/hotels
func GetHotels(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	listEntities[models.Hotel](w, r, db.HotelsCollection, hotelFilter, "hotels")
}

func GetHotel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	getEntity[models.Hotel](w, r, db.HotelsCollection, "hotelid", ps.ByName("hotelid"), "Hotel")
}

// GET /api/places
func GetPlaces(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	listEntities[models.Place](w, r, db.PlacesCollection, placeFilter, "places")
}

func GetPlace(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	getEntity[models.Place](w, r, db.PlacesCollection, "placeid", ps.ByName("placeid"), "Place")
}

// GET /api/restaurants
func GetRestaurants(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	listEntities[models.Restaurant](w, r, db.RestaurantsCollection, restaurantFilter, "restaurants")
}

func GetRestaurant(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	getEntity[models.Restaurant](w, r, db.RestaurantsCollection, "restaurantid", ps.ByName("restaurantid"), "Restaurant")
}
