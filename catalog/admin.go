package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
	"wandervoice/db"
	"wandervoice/globals"
	"wandervoice/models"
	"wandervoice/rdx"
	"wandervoice/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Catalog management. Entities are keyed by the same source-type names the
// planner uses, so the admin surface stays uniform across collections.

type entityMeta struct {
	coll    func() *mongo.Collection
	idField string
}

var entityKinds = map[models.SourceType]entityMeta{
	models.SourceDestination: {func() *mongo.Collection { return db.DestinationsCollection }, "destinationid"},
	models.SourceActivity:    {func() *mongo.Collection { return db.ActivitiesCollection }, "activityid"},
	models.SourceHotel:       {func() *mongo.Collection { return db.HotelsCollection }, "hotelid"},
	models.SourcePlace:       {func() *mongo.Collection { return db.PlacesCollection }, "placeid"},
	models.SourceRestaurant:  {func() *mongo.Collection { return db.RestaurantsCollection }, "restaurantid"},
}

func resolveKind(w http.ResponseWriter, ps httprouter.Params) (entityMeta, bool) {
	meta, ok := entityKinds[models.SourceType(ps.ByName("entitytype"))]
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown entity type")
		return entityMeta{}, false
	}
	return meta, true
}

func invalidateFeatured(kind models.SourceType) {
	if kind == models.SourceDestination {
		rdx.Conn.Del(globals.Ctx, "catalog:destinations:featured")
	}
}

// POST /api/admin/catalog/:entitytype
func CreateEntity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	meta, ok := resolveKind(w, ps)
	if !ok {
		return
	}

	var doc bson.M
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if name, _ := doc["name"].(string); name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}
	delete(doc, "id")
	delete(doc, "created_at")
	delete(doc, "updated_at")

	now := time.Now()
	id := utils.GenerateRandomString(16)
	doc[meta.idField] = id
	doc["created_at"] = now
	doc["updated_at"] = now

	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()

	if _, err := meta.coll().InsertOne(ctx, doc); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create entity")
		return
	}
	invalidateFeatured(models.SourceType(ps.ByName("entitytype")))
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"id": id})
}

// PUT /api/admin/catalog/:entitytype/:entityid
func UpdateEntity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	meta, ok := resolveKind(w, ps)
	if !ok {
		return
	}

	var doc bson.M
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	delete(doc, "id")
	delete(doc, meta.idField)
	delete(doc, "created_at")
	doc["updated_at"] = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()

	res, err := meta.coll().UpdateOne(ctx, bson.M{meta.idField: ps.ByName("entityid")}, bson.M{"$set": doc})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update entity")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Entity not found")
		return
	}
	invalidateFeatured(models.SourceType(ps.ByName("entitytype")))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"updated": true})
}

// DELETE /api/admin/catalog/:entitytype/:entityid
func DeleteEntity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	meta, ok := resolveKind(w, ps)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()

	res, err := meta.coll().DeleteOne(ctx, bson.M{meta.idField: ps.ByName("entityid")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete entity")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Entity not found")
		return
	}
	invalidateFeatured(models.SourceType(ps.ByName("entitytype")))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deleted": true})
}
