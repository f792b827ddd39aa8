package profile

import (
	"context"
	"encoding/json"
	"errors"
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

// GET /api/profile
func GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var p models.Profile
	err := db.ProfilesCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// First visit, nothing stored yet.
		utils.RespondWithJSON(w, http.StatusOK, models.Profile{UserID: userID})
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, p)
}

// PUT /api/profile
func UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload struct {
		DisplayName *string `json:"display_name"`
		AvatarURL   *string `json:"avatar_url"`
		Bio         *string `json:"bio"`
		Language    *string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	set := bson.M{"updated_at": time.Now()}
	if payload.DisplayName != nil {
		set["display_name"] = *payload.DisplayName
	}
	if payload.AvatarURL != nil {
		set["avatar_url"] = *payload.AvatarURL
	}
	if payload.Bio != nil {
		set["bio"] = *payload.Bio
	}
	if payload.Language != nil {
		set["language"] = *payload.Language
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"userid": userID, "created_at": time.Now()},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := db.ProfilesCollection.UpdateOne(ctx, bson.M{"userid": userID}, update, opts); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"updated": true})
}
