package assistant

import (
	"context"
	"log"
	"net/http"
	"wandervoice/globals"
	"wandervoice/middleware"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type wsInbound struct {
	Message string `json:"message"`
}

type wsOutbound struct {
	Action  string `json:"action"` // "typing" or "message"
	Message any    `json:"message,omitempty"`
}

// socketToken reads the JWT from the Authorization header, or from the
// "token" query parameter since browsers cannot set headers on websockets.
func socketToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		return h
	}
	return r.URL.Query().Get("token")
}

// GET /ws/assistant/:sessionid
// Streams turn lifecycle to the client: a "typing" event as soon as the turn
// starts, then the final assistant message. One socket per session.
func (a *Assistant) HandleChatSocket(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sessionID := ps.ByName("sessionid")
	if sessionID == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}
	claims, err := middleware.ValidateJWT(socketToken(r))
	if err != nil || claims.UserID == "" {
		log.Printf("Assistant websocket JWT validation error: %v", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if a.Completer == nil {
		http.Error(w, "OPENAI_API_KEY is not configured on the server", http.StatusServiceUnavailable)
		return
	}

	ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Assistant websocket upgrade error:", err)
		return
	}
	defer conn.Close()

	for {
		var in wsInbound
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Println("Assistant websocket read error:", err)
			}
			return
		}
		if in.Message == "" {
			continue
		}

		if err := conn.WriteJSON(wsOutbound{Action: "typing"}); err != nil {
			return
		}

		reply := a.HandleTurn(ctx, sessionID, in.Message)

		if err := conn.WriteJSON(wsOutbound{Action: "message", Message: reply}); err != nil {
			return
		}
	}
}
