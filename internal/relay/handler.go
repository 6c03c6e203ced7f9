package relay

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/Vovarama1992/rcs-story-bridge/internal/vonage"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// HandleInbound takes one inbound-message webhook. Once the body parses, the
// provider gets a 200 no matter what dispatch does with it.
func (h *Handler) HandleInbound(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request", "cannot read body")
		return
	}

	msg, err := vonage.DecodeInbound(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request", "invalid json")
		return
	}

	h.svc.HandleInbound(r.Context(), msg)

	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// HandleStatus acknowledges delivery-status callbacks. Receipts are recorded
// best-effort; a sink failure never turns into a non-200.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request", "cannot read body")
		return
	}

	ev, err := vonage.DecodeStatus(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request", "invalid json")
		return
	}

	if err := h.svc.RecordStatus(r.Context(), ev); err != nil {
		log.Printf("[relay] record status failed: %v", err)
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// HandleSendStoryRequest sends the conversation-starting card to the
// configured recipient.
func (h *Handler) HandleSendStoryRequest(w http.ResponseWriter, r *http.Request) {
	msgUUID, err := h.svc.SendStoryPrompt(r.Context())
	if err != nil {
		log.Printf("[relay] story prompt failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":           true,
		"message_uuid": msgUUID,
	})
}

type errorBody struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, title, detail string) {
	writeJSON(w, status, errorBody{Status: status, Title: title, Detail: detail})
}
