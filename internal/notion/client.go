package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the Notion API base URL.
const DefaultBaseURL = "https://api.notion.com/v1"

// APIVersion is the pinned Notion-Version header value. The Notion API
// requires every request to declare the schema version it was written
// against; the block schema produced by this package matches this version.
const APIVersion = "2022-06-28"

// DefaultTimeout is the default timeout for the page-creation request.
// Creating a large page is a single synchronous call that the API can take
// several seconds to process, so the timeout is generous.
const DefaultTimeout = 30 * time.Second

// maxErrorBodySize limits how much of an error response body is read.
// Notion error bodies are small JSON documents; the limit only guards
// against pathological responses.
const maxErrorBodySize = 64 * 1024

// Client issues page-creation requests to the Notion API.
//
// The client is deliberately minimal: it sends exactly one POST per
// CreatePage call, treats HTTP 200 as the only success status, and never
// retries. Re-running a successful generation creates a duplicate page;
// the API offers no idempotency key for page creation and the client does
// not attempt a remote existence check.
type Client struct {
	// apiKey is the bearer token (internal integration secret). It is
	// attached to the Authorization header and must never be logged;
	// see the log package's masking handler.
	apiKey string

	// baseURL is the API base URL without a trailing slash. Overridable
	// for tests via WithBaseURL.
	baseURL string

	// httpClient performs the actual transmission.
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests to point the
// client at an httptest server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the request timeout on the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a Notion API client authenticated with the given
// bearer token.
//
// The constructor performs no network I/O and does not verify the token;
// an invalid token surfaces as an APIError with status 401 on the first
// request.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreatePage validates the page payload and transmits it as a single POST
// to the page-creation endpoint.
//
// On HTTP 200 the decoded response is returned. On any other status the
// error is an *APIError carrying the status code and the verbatim response
// body; all failure causes (missing permissions, wrong workspace, revoked
// credential, unshared parent page) collapse into this single path because
// the API's error body is the only diagnostic available. Exactly one
// request is issued regardless of outcome.
func (c *Client) CreatePage(ctx context.Context, page *Page) (*CreatePageResponse, error) {
	if err := page.Validate(); err != nil {
		return nil, fmt.Errorf("invalid page payload: %w", err)
	}

	body, err := json.Marshal(page)
	if err != nil {
		return nil, fmt.Errorf("failed to encode page payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/pages", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", APIVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Surface the error body verbatim; it is the only diagnostic the
		// service provides.
		raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		if readErr != nil {
			return nil, fmt.Errorf("reading error response (status %d): %w", resp.StatusCode, readErr)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var created CreatePageResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &created, nil
}
