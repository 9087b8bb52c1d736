package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/apmshow/apm-chatbot/internal/engine"
)

type chatRequest struct {
	Message string `json:"message"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// handleChat runs the message through the response policy. The
// human-operator override is applied after the policy, so a FAQ hit can
// still be discarded in favor of hand-off. Any panic during matching is
// converted into the fixed processing-error reply with HTTP 200, matching
// the historical behavior of the chat endpoint.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("server: chat recovered: %v", rec)
			writeJSON(w, http.StatusOK, engine.Reply{
				Reply:      engine.ProcessingErrorReply,
				Confidence: 0,
				Source:     engine.SourceError,
			})
		}
	}()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req.Message = ""
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeJSON(w, http.StatusOK, engine.Reply{
			Reply:      engine.EmptyMessageReply,
			Confidence: 0,
			Source:     engine.SourceEmpty,
		})
		return
	}

	reply := s.engine.Respond(message, s.store.Snapshot())

	if s.engine.CheckHumanRequest(message) {
		reply.Reply = s.engine.Handoff()
		reply.Confidence = 1.0
		reply.Source = engine.SourceInstagram
	}

	log.Printf("server: chat %q -> %s (%.2f)", truncate(message, 50), reply.Source, reply.Confidence)
	writeJSON(w, http.StatusOK, reply)
}

// handleGetFAQ returns the current FAQ collection as a JSON array.
func (s *Server) handleGetFAQ(w http.ResponseWriter, r *http.Request) {
	entries := s.store.Snapshot()
	if entries == nil {
		entries = []engine.FaqEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// handleUpdateFAQ overwrites the stored FAQ collection wholesale.
func (s *Server) handleUpdateFAQ(w http.ResponseWriter, r *http.Request) {
	var entries []engine.FaqEntry
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		writeJSON(w, http.StatusInternalServerError, statusResponse{
			Status:  "error",
			Message: "invalid FAQ payload: " + err.Error(),
		})
		return
	}

	if err := s.store.Replace(entries); err != nil {
		log.Printf("server: update-faq: %v", err)
		writeJSON(w, http.StatusInternalServerError, statusResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	log.Printf("server: FAQ replaced with %d entries", len(entries))
	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "success",
		Message: "FAQ updated successfully",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": s.cfg.ServiceName,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: encoding response: %v", err)
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
