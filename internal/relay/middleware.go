package relay

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/Vovarama1992/rcs-story-bridge/internal/vonage"
)

// VerifySignature checks the provider's bearer token on webhook requests.
// The body is read here and rewound so handlers can read it again.
func VerifySignature(secret, apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				writeError(w, http.StatusUnauthorized, "Unauthorized", "missing bearer token")
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Bad Request", "cannot read body")
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if err := vonage.VerifyWebhookToken(token, secret, apiKey, body); err != nil {
				log.Printf("[relay] webhook signature rejected: %v", err)
				writeError(w, http.StatusUnauthorized, "Unauthorized", "invalid signature")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Recover turns handler panics into a 500 so one bad request cannot take the
// process down.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Printf("[relay] panic: %v", rec)
				writeError(w, http.StatusInternalServerError, "Internal Server Error", fmt.Sprint(rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
