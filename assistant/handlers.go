package assistant

import (
	"encoding/json"
	"net/http"
	"strings"
	"wandervoice/utils"

	"github.com/julienschmidt/httprouter"
)

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// POST /api/assistant/chat
func (a *Assistant) HandleChat(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.SessionID == "" || req.Message == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "session_id and message are required")
		return
	}
	if a.Completer == nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "OPENAI_API_KEY is not configured on the server")
		return
	}

	reply := a.HandleTurn(r.Context(), req.SessionID, req.Message)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": reply})
}

// GET /api/assistant/history/:sessionid
func (a *Assistant) GetHistory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sessionID := ps.ByName("sessionid")
	if sessionID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "session id is required")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, a.Sessions.Get(sessionID).History())
}
