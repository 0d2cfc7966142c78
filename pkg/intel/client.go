// Package intel provides the HTTP client for the card generation service:
// competitor analysis, document processing, and battle card generation.
package intel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vantageworks/battlecard/pkg/card"
	apperrors "github.com/vantageworks/battlecard/pkg/errors"
)

// Client connects to the card generation service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new service client.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8090"
	}
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CompetitorAnalysis is the service's digest of one competitor URL.
type CompetitorAnalysis struct {
	URL         string   `json:"url"`
	CompanyName string   `json:"companyName"`
	Summary     string   `json:"summary"`
	Products    []string `json:"products,omitempty"`
	Signals     []string `json:"signals,omitempty"`
}

// ProcessedDocument is an uploaded supporting document after extraction.
type ProcessedDocument struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// GenerationRequest carries everything the service needs to build a card.
type GenerationRequest struct {
	Competitors []CompetitorAnalysis `json:"competitors"`
	UseCase     string               `json:"useCase"`
	Documents   []ProcessedDocument  `json:"documents,omitempty"`
	Template    string               `json:"template"`
	Sections    []string             `json:"sections"`
}

// IsAvailable reports whether the service health endpoint responds.
func (c *Client) IsAvailable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// AnalyzeCompetitor requests an analysis of a single competitor URL.
func (c *Client) AnalyzeCompetitor(ctx context.Context, url string) (*CompetitorAnalysis, error) {
	var result CompetitorAnalysis
	err := c.post(ctx, "/v1/competitors/analyze", map[string]any{"url": url}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ProcessDocument uploads a supporting document for extraction.
func (c *Client) ProcessDocument(ctx context.Context, name string, content []byte) (*ProcessedDocument, error) {
	body := map[string]any{
		"name":    name,
		"content": string(content),
	}
	var result ProcessedDocument
	if err := c.post(ctx, "/v1/documents/process", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Generate requests a battle card for the assembled inputs. The call is
// synchronous; progress events stream separately over the event socket.
func (c *Client) Generate(ctx context.Context, req GenerationRequest) (*card.Card, error) {
	raw, err := c.postRaw(ctx, "/v1/cards/generate", req)
	if err != nil {
		return nil, err
	}

	generated, err := card.Parse(raw)
	if err != nil {
		return nil, apperrors.ServiceWrap(err, apperrors.ErrServiceBadResponse,
			"service returned an unparseable card")
	}
	if generated.GeneratedAt.IsZero() {
		generated.GeneratedAt = time.Now().UTC()
	}
	return generated, nil
}

// post issues a JSON POST and decodes the response into out.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	raw, err := c.postRaw(ctx, path, body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperrors.ServiceWrap(err, apperrors.ErrServiceBadResponse,
			fmt.Sprintf("malformed response from %s", path))
	}
	return nil
}

// postRaw issues a JSON POST and returns the raw response body.
func (c *Client) postRaw(ctx context.Context, path string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, apperrors.ServiceWrap(err, apperrors.ErrServiceTimeout,
				fmt.Sprintf("request to %s timed out", path))
		}
		return nil, apperrors.ServiceWrap(err, apperrors.ErrServiceUnavailable,
			"card service unreachable")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.ServiceWrap(err, apperrors.ErrServiceBadResponse,
			"failed to read service response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Servicef(apperrors.ErrServiceAPIError,
			"request to %s failed (status %d): %s", path, resp.StatusCode, truncate(string(respBody), 200))
	}
	return respBody, nil
}

// truncate shortens s for inclusion in error messages.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
