package relay

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Vovarama1992/rcs-story-bridge/internal/vonage"
)

type fakeSender struct {
	sent []vonage.Message
	uuid string
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg vonage.Message) (string, error) {
	f.sent = append(f.sent, msg)
	return f.uuid, f.err
}

type fakeGenerator struct {
	result StoryResult
}

func (f *fakeGenerator) Generate(context.Context) StoryResult {
	return f.result
}

type fakeReceipts struct {
	saved []vonage.StatusEvent
	err   error
}

func (f *fakeReceipts) SaveReceipt(_ context.Context, ev vonage.StatusEvent) error {
	f.saved = append(f.saved, ev)
	return f.err
}

func newTestService(gen Generator, sender Sender, receipts ReceiptStore) Service {
	return NewService(gen, sender, receipts, "447700900000", "StoryTeller")
}

func TestHandleInbound_StoryTrigger(t *testing.T) {
	sender := &fakeSender{uuid: "uuid-1"}
	gen := &fakeGenerator{result: StoryResult{Text: "a calm tale", Generated: true}}
	svc := newTestService(gen, sender, nil)

	c := svc.HandleInbound(context.Background(), inboundText("447700900001", "generate story"))
	if c.Outcome != OutcomeStoryTrigger {
		t.Fatalf("expected story trigger, got %s", c.Outcome)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 send, got %d", len(sender.sent))
	}

	msg := sender.sent[0]
	if msg.MessageType != vonage.MessageTypeText {
		t.Errorf("expected text message, got %s", msg.MessageType)
	}
	if msg.Text != "a calm tale" {
		t.Errorf("expected generated text, got %q", msg.Text)
	}
	if msg.To != "447700900001" {
		t.Errorf("reply should go to the inbound sender, got %s", msg.To)
	}
	if msg.From != "StoryTeller" {
		t.Errorf("expected configured sender id, got %s", msg.From)
	}
}

func TestHandleInbound_ReplyTrigger(t *testing.T) {
	sender := &fakeSender{uuid: "uuid-7"}
	gen := &fakeGenerator{result: StoryResult{Text: "a tale of stars", Generated: true}}
	svc := newTestService(gen, sender, nil)

	msg := inboundReply("447700900001", vonage.StoryTriggerPayload, "X")
	c := svc.HandleInbound(context.Background(), msg)
	if c.Outcome != OutcomeStoryTrigger {
		t.Fatalf("expected story trigger, got %s", c.Outcome)
	}
	if len(sender.sent) != 1 || sender.sent[0].Text != "a tale of stars" {
		t.Errorf("expected generated text sent, got %+v", sender.sent)
	}
	if sender.sent[0].To != "447700900001" {
		t.Errorf("reply should go to the tapper, got %s", sender.sent[0].To)
	}
}

func TestHandleInbound_Echo(t *testing.T) {
	sender := &fakeSender{uuid: "uuid-2"}
	svc := newTestService(&fakeGenerator{}, sender, nil)

	svc.HandleInbound(context.Background(), inboundText("447700900001", "good night"))
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 send, got %d", len(sender.sent))
	}

	want := "I received your message: good night. Tap 'Generate Story' for a tale!"
	if sender.sent[0].Text != want {
		t.Errorf("expected %q, got %q", want, sender.sent[0].Text)
	}
}

func TestHandleInbound_Ignored(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestService(&fakeGenerator{}, sender, nil)

	msg := inboundText("447700900001", "generate story")
	msg.Channel = "whatsapp"
	c := svc.HandleInbound(context.Background(), msg)
	if c.Outcome != OutcomeIgnored {
		t.Fatalf("expected ignored, got %s", c.Outcome)
	}
	if len(sender.sent) != 0 {
		t.Errorf("ignored message must not send, got %d sends", len(sender.sent))
	}
}

func TestHandleInbound_FallbackStillSent(t *testing.T) {
	sender := &fakeSender{uuid: "uuid-3"}
	gen := &fakeGenerator{result: StoryResult{Text: storyFallback}}
	svc := newTestService(gen, sender, nil)

	svc.HandleInbound(context.Background(), inboundText("447700900001", "generate story"))
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 send, got %d", len(sender.sent))
	}
	if sender.sent[0].Text != storyFallback {
		t.Errorf("expected fallback text, got %q", sender.sent[0].Text)
	}
}

func TestHandleInbound_SendFailureAbsorbed(t *testing.T) {
	sender := &fakeSender{err: errors.New("messages api error: 401 Unauthorized")}
	svc := newTestService(&fakeGenerator{result: StoryResult{Text: "tale", Generated: true}}, sender, nil)

	// Must not panic and must still report the decision.
	c := svc.HandleInbound(context.Background(), inboundText("447700900001", "generate story"))
	if c.Outcome != OutcomeStoryTrigger {
		t.Errorf("expected story trigger despite send failure, got %s", c.Outcome)
	}
	if len(sender.sent) != 1 {
		t.Errorf("expected exactly one attempt, got %d", len(sender.sent))
	}
}

func TestSendStoryPrompt(t *testing.T) {
	sender := &fakeSender{uuid: "uuid-4"}
	svc := newTestService(&fakeGenerator{}, sender, nil)

	msgUUID, err := svc.SendStoryPrompt(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if msgUUID != "uuid-4" {
		t.Errorf("expected uuid-4, got %s", msgUUID)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 send, got %d", len(sender.sent))
	}

	msg := sender.sent[0]
	if msg.MessageType != vonage.MessageTypeCustom {
		t.Errorf("expected custom message, got %s", msg.MessageType)
	}
	if msg.To != "447700900000" || msg.From != "StoryTeller" {
		t.Errorf("expected configured to/from, got to=%s from=%s", msg.To, msg.From)
	}
	if msg.Custom == nil {
		t.Fatal("expected rich card payload")
	}
}

func TestSendStoryPrompt_Error(t *testing.T) {
	sender := &fakeSender{err: errors.New("boom")}
	svc := newTestService(&fakeGenerator{}, sender, nil)

	_, err := svc.SendStoryPrompt(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "send story prompt") {
		t.Errorf("expected wrapped error, got %v", err)
	}
}

func TestRecordStatus_NoSink(t *testing.T) {
	svc := newTestService(&fakeGenerator{}, &fakeSender{}, nil)
	ev := vonage.StatusEvent{MessageUUID: "uuid-5", Status: "delivered"}
	if err := svc.RecordStatus(context.Background(), ev); err != nil {
		t.Errorf("no sink should mean no error, got %v", err)
	}
}

func TestRecordStatus_Saves(t *testing.T) {
	receipts := &fakeReceipts{}
	svc := newTestService(&fakeGenerator{}, &fakeSender{}, receipts)

	ev := vonage.StatusEvent{MessageUUID: "uuid-6", Status: "rejected"}
	if err := svc.RecordStatus(context.Background(), ev); err != nil {
		t.Fatal(err)
	}
	if len(receipts.saved) != 1 || receipts.saved[0].MessageUUID != "uuid-6" {
		t.Errorf("expected receipt saved, got %+v", receipts.saved)
	}
}

func TestRecordStatus_SinkError(t *testing.T) {
	receipts := &fakeReceipts{err: errors.New("db down")}
	svc := newTestService(&fakeGenerator{}, &fakeSender{}, receipts)

	if err := svc.RecordStatus(context.Background(), vonage.StatusEvent{}); err == nil {
		t.Error("expected sink error to surface")
	}
}
