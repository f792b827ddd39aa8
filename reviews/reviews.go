package reviews

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
	"wandervoice/db"
	"wandervoice/globals"
	"wandervoice/models"
	"wandervoice/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validEntityTypes = map[string]bool{
	"destination": true,
	"activity":    true,
	"hotel":       true,
	"place":       true,
	"restaurant":  true,
}

// GET /api/reviews/:entitytype/:entityid
func GetReviews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entityType := ps.ByName("entitytype")
	entityID := ps.ByName("entityid")

	skip, limit := utils.ParsePagination(r, 10, 100)
	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	filter := bson.M{"entity_type": entityType, "entity_id": entityID}
	reviews, err := utils.FindAndDecode[models.Review](ctx, db.ReviewsCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"reviews": reviews})
}

// GET /api/reviews/:entitytype/:entityid/summary
func GetReviewSummary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "entity_type", Value: ps.ByName("entitytype")},
			{Key: "entity_id", Value: ps.ByName("entityid")},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "average", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := db.ReviewsCollection.Aggregate(ctx, pipeline)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to summarize reviews")
		return
	}
	defer cursor.Close(ctx)

	summary := utils.M{"average": 0.0, "count": 0}
	if cursor.Next(ctx) {
		var row struct {
			Average float64 `bson:"average"`
			Count   int     `bson:"count"`
		}
		if err := cursor.Decode(&row); err == nil {
			summary["average"] = row.Average
			summary["count"] = row.Count
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, summary)
}

// POST /api/reviews/:entitytype/:entityid
func AddReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entityType := ps.ByName("entitytype")
	entityID := ps.ByName("entityid")
	if !validEntityTypes[entityType] {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown entity type")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	count, err := db.ReviewsCollection.CountDocuments(ctx, bson.M{
		"userid":      userID,
		"entity_type": entityType,
		"entity_id":   entityID,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check existing review")
		return
	}
	if count > 0 {
		utils.RespondWithError(w, http.StatusConflict, "You have already reviewed this entity")
		return
	}

	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil || review.Rating < 1 || review.Rating > 5 || review.Comment == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid review data")
		return
	}

	now := time.Now()
	review.ReviewID = utils.GenerateRandomString(16)
	review.UserID = userID
	review.EntityType = entityType
	review.EntityID = entityID
	review.CreatedAt = now
	review.UpdatedAt = now

	if _, err := db.ReviewsCollection.InsertOne(ctx, review); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to insert review")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, review)
}

// PUT /api/reviews/:entitytype/:entityid/:reviewid
func EditReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	reviewID := ps.ByName("reviewid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var review models.Review
	if err := db.ReviewsCollection.FindOne(ctx, bson.M{"reviewid": reviewID}).Decode(&review); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}
	if review.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	var payload struct {
		Rating  *int    `json:"rating"`
		Comment *string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid update data")
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if payload.Rating != nil {
		if *payload.Rating < 1 || *payload.Rating > 5 {
			utils.RespondWithError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
			return
		}
		update["rating"] = *payload.Rating
	}
	if payload.Comment != nil {
		update["comment"] = *payload.Comment
	}

	if _, err := db.ReviewsCollection.UpdateOne(ctx, bson.M{"reviewid": reviewID}, bson.M{"$set": update}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update review")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"updated": true})
}

// DELETE /api/reviews/:entitytype/:entityid/:reviewid
func DeleteReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	reviewID := ps.ByName("reviewid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ReviewsCollection.DeleteOne(ctx, bson.M{"reviewid": reviewID, "userid": userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete review")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deleted": true})
}
