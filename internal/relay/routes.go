package relay

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the relay endpoints. Webhook routes go through the
// verify middleware; the trigger endpoint is open.
func RegisterRoutes(r chi.Router, h *Handler, verify func(http.Handler) http.Handler) {
	r.Get("/send-story-request", h.HandleSendStoryRequest)

	r.Group(func(r chi.Router) {
		r.Use(verify)
		r.Post("/webhooks/inbound", h.HandleInbound)
		r.Post("/webhooks/status", h.HandleStatus)
	})

	notFound := func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found", "")
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)
}
