package relay

import (
	"context"

	"github.com/Vovarama1992/rcs-story-bridge/internal/vonage"
)

// StoryResult is one generation attempt: the backend's text verbatim when
// Generated is true, the fixed fallback when it is false. Never reused
// across requests.
type StoryResult struct {
	Text      string
	Generated bool
}

// Sender delivers one outbound message and reports the provider's message
// UUID. Implemented by the Vonage client.
type Sender interface {
	Send(ctx context.Context, msg vonage.Message) (string, error)
}

// Generator produces story text. Backend failures never escape it; the
// result always holds something sendable.
type Generator interface {
	Generate(ctx context.Context) StoryResult
}

// ReceiptStore persists delivery receipts. Write-only: dispatch never reads
// them back, so inbound handling stays stateless.
type ReceiptStore interface {
	SaveReceipt(ctx context.Context, ev vonage.StatusEvent) error
}

// Service is the dispatch coordinator.
type Service interface {
	// HandleInbound classifies one inbound message and performs at most one
	// outbound send. Generation and send failures are absorbed; the returned
	// Classification reports only what was decided.
	HandleInbound(ctx context.Context, msg vonage.InboundMessage) Classification

	// SendStoryPrompt sends the rich-card opener to the configured recipient
	// and returns the provider's message UUID. The one send whose failure
	// the caller gets to see.
	SendStoryPrompt(ctx context.Context) (string, error)

	// RecordStatus stores a delivery receipt when a sink is configured.
	RecordStatus(ctx context.Context, ev vonage.StatusEvent) error
}
