package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
)

var (
	// ErrNoCredential is returned before any network call when no API key is configured.
	ErrNoCredential = errors.New("api key not configured")
	// ErrEmptyResponse indicates the provider returned no choices.
	ErrEmptyResponse = errors.New("invalid response structure: no choices")
)

// Client posts chat completion requests using the credential held by a Config.
type Client struct {
	cfg        *Config
	httpClient *http.Client
	logger     *log.Logger
}

func NewClient(cfg *Config, httpClient *http.Client, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout()}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Client{cfg: cfg, httpClient: httpClient, logger: logger}
}

func (c *Client) Config() *Config {
	return c.cfg
}

// Complete sends one request and classifies the first choice.
func (c *Client) Complete(ctx context.Context, messages []Message, tools []Tool) (Result, error) {
	if !c.cfg.HasCredential() {
		return Result{}, ErrNoCredential
	}
	opts, first := c.cfg.snapshot()
	if first {
		c.logger.Printf("llm: initialized url=%s model=%s", opts.URL, opts.Model)
	}

	payload, err := json.Marshal(chatRequest{
		Model:       opts.Model,
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
		Tools:       tools,
	})
	if err != nil {
		return Result{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, opts.URL, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+opts.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Result{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return Result{}, fmt.Errorf("api returned status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return Result{}, fmt.Errorf("api returned status %d", resp.StatusCode)
	}

	var decoded chatResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return Result{}, ErrEmptyResponse
	}

	msg := decoded.Choices[0].Message
	content := ""
	if msg.Content != nil {
		content = *msg.Content
	}
	assistant := Message{Role: RoleAssistant, Content: content, ToolCalls: msg.ToolCalls}
	if len(msg.ToolCalls) > 0 {
		return Result{Kind: KindToolRequests, Calls: msg.ToolCalls, Assistant: assistant}, nil
	}
	return Result{Kind: KindFinal, Text: content, Assistant: assistant}, nil
}
