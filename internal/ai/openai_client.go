package ai

import (
	"context"
	"errors"
	"log"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient builds the OpenAI-backed generator. Credentials come in by
// injection; the caller validates them at startup.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// newOpenAIClientWithBaseURL is the test hook: same client, fake backend.
func newOpenAIClientWithBaseURL(apiKey, model, baseURL string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	c := NewOpenAIClient(apiKey, model)
	c.client = openai.NewClientWithConfig(cfg)
	return c
}

// Complete sends a single user message with no conversation context and
// returns the first choice's content unmodified. An empty completion counts
// as a malformed response and is reported as an error.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		log.Println("[ai] OpenAI error:", err)
		return "", err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Println("[ai] empty completion")
		return "", errors.New("ai: empty completion")
	}

	return resp.Choices[0].Message.Content, nil
}
