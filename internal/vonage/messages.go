// Package vonage speaks the Messages API v1 wire format for the RCS channel:
// outbound message construction, inbound webhook payloads and the JWT auth
// on both directions.
package vonage

const ChannelRCS = "rcs"

const (
	MessageTypeText   = "text"
	MessageTypeReply  = "reply"
	MessageTypeCustom = "custom"
)

// StoryTriggerPayload and StoryTriggerLabel ride on the suggestion of the
// story prompt card and come back in reply webhooks. The classifier matches
// against these same constants, so card and classifier cannot drift apart.
const (
	StoryTriggerPayload = "GENERATE_STORY_REQUEST"
	StoryTriggerLabel   = "Generate Story"
)

const (
	storyCardTitle       = "Bedtime Story Generator"
	storyCardDescription = "Get a unique, calming bedtime story for your little one. Tap below to begin!"
	storyCardImageURL    = "https://images.unsplash.com/photo-1532012197267-da84d127e765"
)

// Message is one outbound Messages API send. Exactly one of Text / Custom is
// set, selected by MessageType. Values are built once and never mutated.
type Message struct {
	MessageType string         `json:"message_type"`
	Text        string         `json:"text,omitempty"`
	Custom      *CustomPayload `json:"custom,omitempty"`
	To          string         `json:"to"`
	From        string         `json:"from"`
	Channel     string         `json:"channel"`
}

// CustomPayload wraps the RCS-native content the Messages API forwards as-is.
type CustomPayload struct {
	ContentMessage ContentMessage `json:"contentMessage"`
}

type ContentMessage struct {
	RichCard RichCard `json:"richCard"`
}

type RichCard struct {
	StandaloneCard StandaloneCard `json:"standaloneCard"`
}

type StandaloneCard struct {
	CardOrientation string      `json:"cardOrientation"`
	CardContent     CardContent `json:"cardContent"`
}

type CardContent struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Media       Media        `json:"media"`
	Suggestions []Suggestion `json:"suggestions"`
}

type Media struct {
	Height      string      `json:"height"`
	ContentInfo ContentInfo `json:"contentInfo"`
}

type ContentInfo struct {
	FileURL string `json:"fileUrl"`
}

type Suggestion struct {
	Reply *SuggestedReply `json:"reply,omitempty"`
}

type SuggestedReply struct {
	Text         string `json:"text"`
	PostbackData string `json:"postbackData"`
}

// NewStoryPrompt builds the vertical rich card that starts a conversation:
// fixed title, description and image, one suggestion carrying the story
// trigger.
func NewStoryPrompt(to, from string) Message {
	return Message{
		MessageType: MessageTypeCustom,
		Custom: &CustomPayload{
			ContentMessage: ContentMessage{
				RichCard: RichCard{
					StandaloneCard: StandaloneCard{
						CardOrientation: "VERTICAL",
						CardContent: CardContent{
							Title:       storyCardTitle,
							Description: storyCardDescription,
							Media: Media{
								Height: "TALL",
								ContentInfo: ContentInfo{
									FileURL: storyCardImageURL,
								},
							},
							Suggestions: []Suggestion{
								{
									Reply: &SuggestedReply{
										Text:         StoryTriggerLabel,
										PostbackData: StoryTriggerPayload,
									},
								},
							},
						},
					},
				},
			},
		},
		To:      to,
		From:    from,
		Channel: ChannelRCS,
	}
}

// NewTextMessage wraps arbitrary text. No length or encoding checks here;
// the Messages API is the sole validator.
func NewTextMessage(to, from, body string) Message {
	return Message{
		MessageType: MessageTypeText,
		Text:        body,
		To:          to,
		From:        from,
		Channel:     ChannelRCS,
	}
}
