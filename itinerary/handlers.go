package itinerary

import (
	"encoding/json"
	"net/http"
	"strconv"
	"wandervoice/models"
	"wandervoice/utils"

	"github.com/julienschmidt/httprouter"
)

// API exposes one session-scoped working plan per session id. The registry is
// owned here and injected from main; nothing else holds plan state.
type API struct {
	Sessions *Registry
}

func NewAPI() *API {
	return &API{Sessions: NewRegistry()}
}

func validSourceType(t models.SourceType) bool {
	for _, s := range models.SourceTypes {
		if s == t {
			return true
		}
	}
	return false
}

type addItemRequest struct {
	SessionID  string            `json:"session_id"`
	SourceType models.SourceType `json:"source_type"`
	DayNumber  int               `json:"day_number"`
	Entity     map[string]any    `json:"entity"`
}

// POST /api/plan/items
func (api *API) AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.SessionID == "" || req.Entity == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "session_id and entity are required")
		return
	}
	if !validSourceType(req.SourceType) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown source type")
		return
	}
	if req.DayNumber == 0 {
		req.DayNumber = 1
	}

	item := api.Sessions.Get(req.SessionID).AddItem(req.Entity, req.SourceType, req.DayNumber)
	utils.RespondWithJSON(w, http.StatusCreated, item)
}

// DELETE /api/plan/items/:itemid
func (api *API) RemoveItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	api.Sessions.Get(sessionID).RemoveItem(ps.ByName("itemid"))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true})
}

type moveItemRequest struct {
	SessionID string `json:"session_id"`
	DayNumber int    `json:"day_number"`
}

// POST /api/plan/items/:itemid/move
func (api *API) MoveItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req moveItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.SessionID == "" || req.DayNumber < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "session_id and day_number are required")
		return
	}

	st := api.Sessions.Get(req.SessionID)
	st.MoveItemToDay(ps.ByName("itemid"), req.DayNumber)
	utils.RespondWithJSON(w, http.StatusOK, st.GetItemsByDay(req.DayNumber))
}

type reorderItemRequest struct {
	SessionID string `json:"session_id"`
	DayNumber int    `json:"day_number"`
	NewIndex  int    `json:"new_index"`
}

// POST /api/plan/items/:itemid/reorder
func (api *API) ReorderItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req reorderItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.SessionID == "" || req.DayNumber < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "session_id and day_number are required")
		return
	}

	st := api.Sessions.Get(req.SessionID)
	st.ReorderItem(ps.ByName("itemid"), req.DayNumber, req.NewIndex)
	utils.RespondWithJSON(w, http.StatusOK, st.GetItemsByDay(req.DayNumber))
}

// GET /api/plan/days/:day
func (api *API) GetDay(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "session_id is required")
		return
	}
	day, err := strconv.Atoi(ps.ByName("day"))
	if err != nil || day < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid day number")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, api.Sessions.Get(sessionID).GetItemsByDay(day))
}

// GET /api/plan
func (api *API) GetPlan(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, api.Sessions.Get(sessionID).Items())
}

// DELETE /api/plan
func (api *API) ClearPlan(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	api.Sessions.Get(sessionID).Clear()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true})
}
