// Package openai is the OpenAI implementation of the model client, using
// the chat completions vision API.
package openai

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"xray-education-service/llm"
)

const openAIEndpoint = "https://api.openai.com/v1/chat/completions"

// DefaultModel is the vision-capable chat model used when none is
// configured.
const DefaultModel = "gpt-4o"

type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type TextContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type ImageURL struct {
	URL string `json:"url"`
}

type ImageContent struct {
	Type     string   `json:"type"`
	ImageURL ImageURL `json:"image_url"`
}

type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content any `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client represents an OpenAI API client
type Client struct {
	apiKey string
	model  string
	client *http.Client
}

// New builds an OpenAI client. The key is required; a missing key is a
// configuration error the caller can distinguish from transport failures.
func New(apiKey, model string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: %w", llm.ErrMissingAPIKey)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: timeout},
	}, nil
}

// SourceName identifies this provider in saved analyses
func (c *Client) SourceName() string {
	return "ChatGPT"
}

func (c *Client) ModelName() string {
	return c.model
}

// encodeImageToBase64 converts image bytes to a base64 data URL
func encodeImageToBase64(imageData []byte, mimeType string) string {
	base64Data := base64.StdEncoding.EncodeToString(imageData)
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64Data)
}

// AnalyzeImage sends one prompt with one inline image and returns the model
// text. A single attempt, no retry.
func (c *Client) AnalyzeImage(imageData []byte, mimeType, prompt string, gen llm.GenerationConfig) (string, error) {
	textPrompt := TextContent{
		Type: "text",
		Text: prompt,
	}

	imagePrompt := ImageContent{
		Type: "image_url",
		ImageURL: ImageURL{
			URL: encodeImageToBase64(imageData, mimeType),
		},
	}

	reqBody := ChatRequest{
		Model: c.model,
		Messages: []Message{
			{
				Role: "user",
				Content: []any{
					imagePrompt,
					textPrompt,
				},
			},
		},
		Temperature: gen.Temperature,
		MaxTokens:   gen.MaxOutputTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", openAIEndpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	// Extract the text content from the response
	content := chatResp.Choices[0].Message.Content
	if contentStr, ok := content.(string); ok {
		return contentStr, nil
	}

	// If content is not a string, try to marshal it back to JSON
	contentJSON, err := json.Marshal(content)
	if err != nil {
		return "", fmt.Errorf("failed to marshal content: %w", err)
	}

	return string(contentJSON), nil
}
