package relay

import (
	"strings"

	"github.com/Vovarama1992/rcs-story-bridge/internal/vonage"
)

// storyTriggerPhrase is the free-text trigger. Matching is case-insensitive
// and exact, no fuzzy matching.
const storyTriggerPhrase = "generate story"

type Outcome string

const (
	OutcomeStoryTrigger Outcome = "story_trigger"
	OutcomeEcho         Outcome = "echo"
	OutcomeIgnored      Outcome = "ignored"
)

// Classification is the decision derived from one inbound message: what to do
// and who to answer. Text carries the original text, set only for OutcomeEcho.
type Classification struct {
	Outcome   Outcome
	Recipient string
	Text      string
}

// Classify maps an inbound message to a reply decision. Pure function: same
// input, same answer, nothing consulted beyond the argument.
//
// A structured reply triggers on either the machine payload or the visible
// label, because providers differ in which field survives the round trip.
// Unknown structured replies are assumed to be noise from other card types
// and stay silent; free text always earns a reply.
func Classify(msg vonage.InboundMessage) Classification {
	if msg.Channel != vonage.ChannelRCS {
		return Classification{Outcome: OutcomeIgnored}
	}

	switch msg.MessageType {
	case vonage.MessageTypeReply:
		if msg.Reply == nil {
			return Classification{Outcome: OutcomeIgnored}
		}
		if msg.Reply.ID == vonage.StoryTriggerPayload || msg.Reply.Title == vonage.StoryTriggerLabel {
			return Classification{Outcome: OutcomeStoryTrigger, Recipient: msg.From}
		}
		return Classification{Outcome: OutcomeIgnored}

	case vonage.MessageTypeText:
		if strings.EqualFold(msg.Text, storyTriggerPhrase) {
			return Classification{Outcome: OutcomeStoryTrigger, Recipient: msg.From}
		}
		return Classification{Outcome: OutcomeEcho, Recipient: msg.From, Text: msg.Text}

	default:
		return Classification{Outcome: OutcomeIgnored}
	}
}
