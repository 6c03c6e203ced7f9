package vonage

import (
	"encoding/json"
	"fmt"
)

// InboundMessage is one inbound webhook delivery, decoded as-is. Fields the
// provider did not send stay zero; the classifier decides what that means.
// Only Channel, MessageType, From, Text and Reply matter downstream, the rest
// is kept for logging.
type InboundMessage struct {
	Channel     string        `json:"channel"`
	MessageType string        `json:"message_type"`
	MessageUUID string        `json:"message_uuid"`
	To          string        `json:"to"`
	From        string        `json:"from"`
	Timestamp   string        `json:"timestamp"`
	Text        string        `json:"text,omitempty"`
	Reply       *InboundReply `json:"reply,omitempty"`
}

// InboundReply is the structured echo of a tapped suggestion: ID carries the
// postback data, Title the visible label. Providers are not consistent about
// which one round-trips intact.
type InboundReply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// StatusEvent is one delivery-status webhook delivery.
type StatusEvent struct {
	MessageUUID string       `json:"message_uuid"`
	Status      string       `json:"status"`
	Channel     string       `json:"channel"`
	To          string       `json:"to"`
	From        string       `json:"from"`
	Timestamp   string       `json:"timestamp"`
	Error       *StatusError `json:"error,omitempty"`
}

type StatusError struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// DecodeInbound parses a raw webhook body into an InboundMessage. It fails
// only when the body is not JSON at all; unknown shapes decode to zero values
// and fall through to classification.
func DecodeInbound(data []byte) (InboundMessage, error) {
	var msg InboundMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return InboundMessage{}, fmt.Errorf("decode inbound webhook: %w", err)
	}
	return msg, nil
}

// DecodeStatus parses a raw delivery-status body.
func DecodeStatus(data []byte) (StatusEvent, error) {
	var ev StatusEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return StatusEvent{}, fmt.Errorf("decode status webhook: %w", err)
	}
	return ev, nil
}
