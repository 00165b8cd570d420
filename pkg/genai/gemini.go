// Package genai is a minimal client for the Gemini generateContent REST API.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrNoText is returned when the API answered successfully but produced no
// usable text.
var ErrNoText = errors.New("genai: response contained no text")

// Client calls the Gemini text-generation API. The zero value is not
// usable; construct with NewClient.
type Client struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// NewClient returns a client for the given API key, base URL and model.
// The transport's default timeout behavior is kept as-is.
func NewClient(apiKey, baseURL, model string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Model:      model,
		HTTPClient: &http.Client{},
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateRequest struct {
	SystemInstruction *content         `json:"system_instruction,omitempty"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateContent issues one generateContent request and returns the
// concatenated text of the first candidate. An empty candidate list or
// empty text is an error; callers decide how to surface it.
func (c *Client) GenerateContent(ctx context.Context, systemInstruction, prompt string, temperature float64) (string, error) {
	if c.APIKey == "" {
		return "", fmt.Errorf("genai: API key not configured")
	}

	reqBody := generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{Temperature: temperature},
	}
	if systemInstruction != "" {
		reqBody.SystemInstruction = &content{Parts: []part{{Text: systemInstruction}}}
	}
	raw, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.BaseURL, c.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("genai: request failed status=%d body=%s", resp.StatusCode, string(b))
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("genai: decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 {
		return "", ErrNoText
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
