package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the DeepSeek OpenAI-compatible API endpoint.
const DefaultBaseURL = "https://api.deepseek.com/v1"

// DefaultModel is the general-purpose chat model.
const DefaultModel = "deepseek-chat"

// FormatError reports a response body that matched none of the known
// completion shapes.
type FormatError struct {
	Body string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unexpected response format: %s", e.Body)
}

// Config holds DeepSeek client configuration
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
}

// Client is a DeepSeek chat-completion API client
type Client struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	client      *http.Client
	log         zerolog.Logger
}

// NewClient creates a new DeepSeek client.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		client: &http.Client{
			Timeout: 12 * time.Second,
		},
		log: log.With().Str("client", "deepseek").Logger(),
	}
}

// Request/response types (OpenAI-compatible wire format)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	// Some gateways flatten the completion into a top-level output field.
	Output string `json:"output"`
}

// ChatCompletion sends a single user question and returns the model's
// answer. One attempt, no retries.
func (c *Client) ChatCompletion(ctx context.Context, question string) (string, error) {
	payload := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: question}},
		Temperature: c.temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("DeepSeek API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &FormatError{Body: string(respBody)}
	}

	c.log.Debug().
		Dur("duration", time.Since(start)).
		Int("status", resp.StatusCode).
		Msg("Chat completion finished")

	if len(parsed.Choices) > 0 && parsed.Choices[0].Message.Content != "" {
		return parsed.Choices[0].Message.Content, nil
	}

	if parsed.Output != "" {
		return parsed.Output, nil
	}

	return "", &FormatError{Body: string(respBody)}
}
