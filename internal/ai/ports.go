package ai

import "context"

// AI is the external text generator. It knows nothing about Vonage, webhooks
// or the relay; it takes one single-turn prompt and returns the backend's
// text verbatim.
type AI interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
