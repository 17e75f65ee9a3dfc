package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"finmind/internal/assistant"
)

type chatRequest struct {
	Query     string `json:"query"`
	VoiceMode bool   `json:"voice_mode"`
}

// handleChat serves the conversation: GET returns the transcript, POST
// submits one query. While a request is in flight new submissions get
// 409; gateway failures come back as a normal reply carrying the
// fallback text.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if s.chat == nil {
		writeError(w, http.StatusServiceUnavailable, "assistant not configured")
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.chat.Transcript())
	case http.MethodPost:
		s.sendChat(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) sendChat(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	var req chatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid chat request")
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusUnprocessableEntity, "query must not be empty")
		return
	}

	reply, err := s.chat.Send(r.Context(), req.Query, req.VoiceMode)
	if err != nil {
		if errors.Is(err, assistant.ErrBusy) {
			writeError(w, http.StatusConflict, "a request is already in progress")
			return
		}
		writeError(w, http.StatusInternalServerError, "chat failed")
		return
	}

	writeJSON(w, http.StatusOK, reply)
}
