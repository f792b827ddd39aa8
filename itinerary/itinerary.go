package itinerary

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
	"wandervoice/db"
	"wandervoice/models"
	"wandervoice/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type saveItineraryRequest struct {
	SessionID     string  `json:"session_id"`
	Name          string  `json:"name"`
	DestinationID string  `json:"destination_id,omitempty"`
	StartDate     string  `json:"start_date,omitempty"`
	EndDate       string  `json:"end_date,omitempty"`
	Style         string  `json:"style,omitempty"`
	Budget        float64 `json:"budget,omitempty"`
}

// POST /api/itineraries
// Persists the session's working plan as a named itinerary with ordered
// items. The working plan itself stays untouched.
func (api *API) SaveItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req saveItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.SessionID == "" || req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "session_id and name are required")
		return
	}

	items := api.Sessions.Get(req.SessionID).Items()
	if len(items) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Nothing to save")
		return
	}

	now := time.Now()
	itin := models.Itinerary{
		ItineraryID:   utils.GenerateRandomString(13),
		UserID:        userID,
		Name:          req.Name,
		DestinationID: req.DestinationID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Style:         req.Style,
		Budget:        req.Budget,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.ItineraryCollection.InsertOne(ctx, itin); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving itinerary")
		return
	}

	saved := make([]models.SavedItineraryItem, 0, len(items))
	docs := make([]interface{}, 0, len(items))
	orderInDay := map[int]int{}
	for _, it := range items {
		idx := orderInDay[it.DayNumber]
		orderInDay[it.DayNumber] = idx + 1

		doc := models.SavedItineraryItem{
			ItemID:      utils.GenerateRandomString(13),
			ItineraryID: itin.ItineraryID,
			ItemType:    string(it.SourceType),
			SourceID:    stringField(it.SourceData, "id"),
			Name:        it.Name,
			DayNumber:   it.DayNumber,
			OrderIndex:  idx,
			CreatedAt:   now,
		}
		saved = append(saved, doc)
		docs = append(docs, doc)
	}
	if _, err := db.ItineraryItemsCollection.InsertMany(ctx, docs); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving itinerary items")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"itinerary": itin, "items": saved})
}

// GET /api/itineraries
func (api *API) GetItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID, "deleted": bson.M{"$ne": true}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	itineraries, err := utils.FindAndDecode[models.Itinerary](ctx, db.ItineraryCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}
	if itineraries == nil {
		itineraries = []models.Itinerary{}
	}

	utils.RespondWithJSON(w, http.StatusOK, itineraries)
}

// GET /api/itineraries/:itineraryid
func (api *API) GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itineraryID := ps.ByName("itineraryid")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var itin models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{
		"itineraryid": itineraryID,
		"deleted":     bson.M{"$ne": true},
	}).Decode(&itin)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "day_number", Value: 1},
		{Key: "order_index", Value: 1},
	})
	items, err := utils.FindAndDecode[models.SavedItineraryItem](ctx, db.ItineraryItemsCollection,
		bson.M{"itinerary_id": itineraryID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itinerary items")
		return
	}
	if items == nil {
		items = []models.SavedItineraryItem{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"itinerary": itin, "items": items})
}

// DELETE /api/itineraries/:itineraryid
func (api *API) DeleteItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	itineraryID := ps.ByName("itineraryid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ItineraryCollection.UpdateOne(ctx,
		bson.M{"itineraryid": itineraryID, "user_id": userID},
		bson.M{"$set": bson.M{"deleted": true, "updated_at": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting itinerary")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true})
}
