package relay

import (
	"context"
	"fmt"
	"log"

	"github.com/Vovarama1992/rcs-story-bridge/internal/vonage"
)

type service struct {
	gen      Generator
	sender   Sender
	receipts ReceiptStore // nil when no sink is configured
	to       string       // recipient of the initial story prompt
	from     string       // RCS sender id on every outbound message
}

func NewService(gen Generator, sender Sender, receipts ReceiptStore, to, from string) Service {
	return &service{
		gen:      gen,
		sender:   sender,
		receipts: receipts,
		to:       to,
		from:     from,
	}
}

// HandleInbound holds no state between calls: classify, act, forget.
func (s *service) HandleInbound(ctx context.Context, msg vonage.InboundMessage) Classification {
	c := Classify(msg)

	switch c.Outcome {
	case OutcomeStoryTrigger:
		log.Printf("[relay] story trigger from=%s", c.Recipient)
		result := s.gen.Generate(ctx)
		s.reply(ctx, c.Recipient, result.Text)

	case OutcomeEcho:
		log.Printf("[relay] echo from=%s text=%q", c.Recipient, c.Text)
		body := fmt.Sprintf("I received your message: %s. Tap '%s' for a tale!",
			c.Text, vonage.StoryTriggerLabel)
		s.reply(ctx, c.Recipient, body)

	case OutcomeIgnored:
		log.Printf("[relay] ignored channel=%s type=%s", msg.Channel, msg.MessageType)
	}

	return c
}

// reply sends one text message and absorbs delivery failure: the webhook
// caller gets its 200 either way, the failure is an operator concern.
func (s *service) reply(ctx context.Context, to, body string) {
	msgUUID, err := s.sender.Send(ctx, vonage.NewTextMessage(to, s.from, body))
	if err != nil {
		log.Printf("[relay] send to %s failed: %v", to, err)
		return
	}
	log.Printf("[relay] sent text to=%s message_uuid=%s", to, msgUUID)
}

func (s *service) SendStoryPrompt(ctx context.Context) (string, error) {
	msgUUID, err := s.sender.Send(ctx, vonage.NewStoryPrompt(s.to, s.from))
	if err != nil {
		return "", fmt.Errorf("send story prompt: %w", err)
	}
	log.Printf("[relay] story prompt sent to=%s message_uuid=%s", s.to, msgUUID)
	return msgUUID, nil
}

func (s *service) RecordStatus(ctx context.Context, ev vonage.StatusEvent) error {
	log.Printf("[relay] status message_uuid=%s status=%s", ev.MessageUUID, ev.Status)
	if s.receipts == nil {
		return nil
	}
	return s.receipts.SaveReceipt(ctx, ev)
}
