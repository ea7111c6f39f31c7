package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"sint-message-service/internal/config"
)

// APIError carries the provider's HTTP status and response body so callers
// can distinguish authentication, missing-voice, rate-limit and quota
// failures for operator remediation.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("elevenlabs request failed (status %d): %s", e.StatusCode, e.Body)
}

// Client is a text-to-speech client for the ElevenLabs API
type Client struct {
	apiKey       string
	voiceID      string
	modelID      string
	outputFormat string
	baseURL      string
	httpClient   *http.Client
}

// NewClient creates an ElevenLabs client from config
func NewClient(cfg config.ElevenLabsConfig) *Client {
	return &Client{
		apiKey:       cfg.APIKey,
		voiceID:      cfg.VoiceID,
		modelID:      cfg.ModelID,
		outputFormat: cfg.OutputFormat,
		baseURL:      cfg.BaseURL,
		httpClient:   &http.Client{Timeout: 120 * time.Second},
	}
}

// Name identifies this provider in logs and fallback errors
func (c *Client) Name() string { return "elevenlabs" }

type synthesizeRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

// Synthesize converts text to MP3 audio using the configured voice
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	reqBody, err := json.Marshal(synthesizeRequest{Text: text, ModelID: c.modelID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal synthesize request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/text-to-speech/%s?output_format=%s",
		c.baseURL, url.PathEscape(c.voiceID), url.QueryEscape(c.outputFormat))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create synthesize request: %w", err)
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synthesize request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read synthesize response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
