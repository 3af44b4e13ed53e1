package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Sentinel markers the scoring prompt asks the model to use around (or in
// place of) its JSON answer.
const (
	MarkerJSON    = "<<<JSON>>>"
	MarkerEndJSON = "<<<ENDJSON>>>"
	MarkerNoJSON  = "<<<NO_JSON>>>"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.0-flash"

	// requestTimeout bounds the single upstream attempt; past it the
	// caller treats the scorer as failed and falls back locally.
	requestTimeout = 30 * time.Second
)

// Client calls the Gemini generateContent endpoint and returns the raw text
// payload of the first candidate. One attempt, no retries: the scoring
// pipeline owns the fallback behavior.
type Client struct {
	BaseURL string
	Model   string
	APIKey  string
	HTTP    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		Model:   defaultModel,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: requestTimeout},
	}
}

// generateRequest mirrors the provider's request envelope.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse is the subset of the provider's nested response envelope
// the portal cares about.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateContent sends the prompt and extracts the text payload. Transport
// errors, timeouts and non-2xx statuses are returned as errors. A 2xx
// response that is not a readable envelope yields empty text, same as an
// empty candidate list: the scorer treats missing text as a malformed
// answer, not an upstream failure.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	reqBody, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.BaseURL, c.Model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var envelope generateResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", nil
	}
	if len(envelope.Candidates) == 0 || len(envelope.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return envelope.Candidates[0].Content.Parts[0].Text, nil
}

// Clean strips markdown code fences and the custom JSON markers wherever
// they appear in a model answer, leaving what should be bare JSON.
func Clean(s string) string {
	clean := strings.ReplaceAll(s, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.ReplaceAll(clean, MarkerJSON, "")
	clean = strings.ReplaceAll(clean, MarkerEndJSON, "")
	return strings.TrimSpace(clean)
}
