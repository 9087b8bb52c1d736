// Package widget serves the embedded chat widget's live websocket channel.
// Each frame carries one user message and receives one engine reply.
package widget

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/apmshow/apm-chatbot/internal/engine"
	"github.com/apmshow/apm-chatbot/internal/faqstore"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// chatRequest is the incoming WebSocket message format.
type chatRequest struct {
	Type      string `json:"type"`       // "message"
	SessionID string `json:"session_id"` // empty for new sessions
	Content   string `json:"content"`
}

// chatResponse is the outgoing WebSocket message format.
type chatResponse struct {
	Type       string        `json:"type"` // "response" or "error"
	SessionID  string        `json:"session_id"`
	Reply      string        `json:"reply,omitempty"`
	Confidence float64       `json:"confidence"`
	Source     engine.Source `json:"source,omitempty"`
	Error      string        `json:"error,omitempty"`
}

// Widget handles widget websocket sessions over the engine and FAQ store.
type Widget struct {
	engine *engine.Engine
	store  *faqstore.Store
}

// New creates a widget handler.
func New(eng *engine.Engine, store *faqstore.Store) *Widget {
	return &Widget{engine: eng, store: store}
}

// HandleWebSocket upgrades the connection and serves chat frames until the
// client goes away.
func (wd *Widget) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("widget: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("widget: websocket read: %v", err)
			}
			return
		}

		var req chatRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			wd.sendError(conn, "", "invalid message format")
			continue
		}

		switch req.Type {
		case "message":
			wd.handleMessage(conn, req)
		default:
			wd.sendError(conn, req.SessionID, "unknown message type: "+req.Type)
		}
	}
}

func (wd *Widget) handleMessage(conn *websocket.Conn, req chatRequest) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	reply := wd.respond(req.Content)

	wd.send(conn, chatResponse{
		Type:       "response",
		SessionID:  sessionID,
		Reply:      reply.Reply,
		Confidence: reply.Confidence,
		Source:     reply.Source,
	})
}

// respond mirrors the HTTP chat boundary: policy first, then the
// human-operator override, with panics converted into the fixed
// processing-error reply.
func (wd *Widget) respond(content string) (reply engine.Reply) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("widget: chat recovered: %v", rec)
			reply = engine.Reply{
				Reply:      engine.ProcessingErrorReply,
				Confidence: 0,
				Source:     engine.SourceError,
			}
		}
	}()

	reply = wd.engine.Respond(content, wd.store.Snapshot())

	if wd.engine.CheckHumanRequest(content) {
		reply.Reply = wd.engine.Handoff()
		reply.Confidence = 1.0
		reply.Source = engine.SourceInstagram
	}
	return reply
}

func (wd *Widget) send(conn *websocket.Conn, resp chatResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("widget: websocket write: %v", err)
	}
}

func (wd *Widget) sendError(conn *websocket.Conn, sessionID, message string) {
	wd.send(conn, chatResponse{
		Type:      "error",
		SessionID: sessionID,
		Error:     message,
	})
}
