package remote

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

// CardPath is the well-known discovery URI for evaluator manifests.
const CardPath = "/.well-known/evaluator-card.json"

// EvaluatePath is the endpoint a remote evaluator serves requests on.
const EvaluatePath = "/evaluate"

// Client is the transport-facing surface consumed by specialist adapters.
type Client interface {
	Evaluate(ctx context.Context, baseURL string, req EvaluateRequest) (*EvaluateResponse, error)
	Discover(ctx context.Context, baseURL string) (*EvaluatorCard, error)
}

// Compile-time interface check.
var _ Client = (*HTTPClient)(nil)

// HTTPClient implements Client over plain JSON/HTTP.
type HTTPClient struct {
	http *http.Client
}

// ClientOption configures an HTTPClient.
type ClientOption func(*HTTPClient)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.http.Timeout = d
	}
}

// WithHTTPClient replaces the underlying *http.Client entirely.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *HTTPClient) {
		c.http = hc
	}
}

// NewHTTPClient creates a client with a 30s default timeout.
func NewHTTPClient(opts ...ClientOption) *HTTPClient {
	c := &HTTPClient{
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Evaluate posts a document to the remote evaluator and decodes its verdict.
func (c *HTTPClient) Evaluate(ctx context.Context, baseURL string, req EvaluateRequest) (*EvaluateResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("remote: marshal request: %w", err)
	}

	url := strings.TrimRight(baseURL, "/") + EvaluatePath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("remote: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("remote: evaluate: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("remote: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Op: "evaluate", Code: resp.StatusCode, Body: string(respBody)}
	}

	var out EvaluateResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("remote: decode response: %w", err)
	}
	return &out, nil
}

// Discover fetches the evaluator card from the well-known URI.
func (c *HTTPClient) Discover(ctx context.Context, baseURL string) (*EvaluatorCard, error) {
	url := strings.TrimRight(baseURL, "/") + CardPath

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("remote: create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("remote: discover: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{Op: "discover", Code: resp.StatusCode, Body: string(body)}
	}

	var card EvaluatorCard
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		return nil, fmt.Errorf("remote: decode evaluator card: %w", err)
	}
	return &card, nil
}

// StatusError is returned for non-200 responses from a remote evaluator.
type StatusError struct {
	Op   string
	Code int
	Body string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("remote: %s: HTTP %d: %s", e.Op, e.Code, e.Body)
}
