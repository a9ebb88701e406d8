package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// TextCompletionClient is the external AI collaborator: free text in, free
// text out. Constructed once at startup and passed into whatever needs it;
// there is no package-level client.
type TextCompletionClient interface {
	Complete(ctx context.Context, prompt string, opts Options) (string, error)
}

// Options tune a single completion request.
type Options struct {
	SystemPrompt string
	Temperature  *float64
	MaxTokens    *int
}

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	Model      string
}

// NewClient builds a client with the long timeout LLM responses need.
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 120 * time.Second},
		BaseURL:    baseURL,
		APIKey:     apiKey,
		Model:      model,
	}
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Stream      bool                    `json:"stream"`
	Temperature *float64                `json:"temperature,omitempty"`
	MaxTokens   *int                    `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends one chat-completion request and returns the model's text.
func (c *Client) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	messages := []chatCompletionMessage{}
	if opts.SystemPrompt != "" {
		messages = append(messages, chatCompletionMessage{Role: "system", Content: opts.SystemPrompt})
	}
	messages = append(messages, chatCompletionMessage{Role: "user", Content: prompt})

	request := chatCompletionRequest{
		Model:       c.Model,
		Messages:    messages,
		Stream:      false,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" && c.APIKey != "none" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %v", err)
	}
	if resp.StatusCode != 200 {
		log.Printf("LLM API error (status %d): %s", resp.StatusCode, string(body))
		return "", fmt.Errorf("LLM API error (status %d)", resp.StatusCode)
	}

	var response chatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}
	return response.Choices[0].Message.Content, nil
}

// IsConnected probes the endpoint's model listing.
func (c *Client) IsConnected() bool {
	resp, err := c.HTTPClient.Get(c.BaseURL + "/models")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == 200
}
