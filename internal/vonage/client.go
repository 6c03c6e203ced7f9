package vonage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the Messages API. Safe for concurrent use.
type Client struct {
	baseURL string
	tokens  *TokenSource
	client  *http.Client
}

func NewClient(baseURL string, tokens *TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Send posts one message and returns the provider's message UUID. A non-2xx
// answer becomes an error carrying the response body; the caller decides
// whether that is fatal.
func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	b, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v1/messages",
		bytes.NewReader(b),
	)
	if err != nil {
		return "", err
	}

	token, err := c.tokens.Token()
	if err != nil {
		return "", fmt.Errorf("sign request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return "", errors.New(
			"messages api error: " +
				resp.Status +
				" body=" + string(respBody),
		)
	}

	var out struct {
		MessageUUID string `json:"message_uuid"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode send response: %w", err)
	}

	return out.MessageUUID, nil
}
