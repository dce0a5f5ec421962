package api

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

// DefaultBaseURL is the development backend address used when the
// configuration does not override it.
const DefaultBaseURL = "http://localhost:8000/api/v1"

// TokenSource supplies the bearer credential attached to outgoing requests.
// An empty token means the request goes out unauthenticated; that is not an
// error. The session layer's token store satisfies this interface.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// HTTPClient is the concrete Client talking JSON over HTTP.
type HTTPClient struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client
}

// Option customizes an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying transport, e.g. to set a timeout
// or to point tests at an httptest server's client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

// WithTimeout sets the transport-level timeout for every request.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// New constructs an HTTPClient against baseURL. tokens may be nil, in which
// case every request is sent unauthenticated.
func New(baseURL string, tokens TokenSource, opts ...Option) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend base address.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// url resolves a path against the base address. Paths that are already
// absolute URLs are used as-is.
func (c *HTTPClient) url(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.baseURL + path
}

// Do performs a single round trip: body (if non-nil) is JSON-encoded,
// the stored bearer credential (if any) is attached, and on a 2xx status
// the response body is decoded into out. A 204 response, or a nil out,
// skips decoding. Extra headers override the defaults.
func (c *HTTPClient) Do(ctx context.Context, method, path string, body any, header http.Header, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, values := range header {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("reading stored token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return &Error{StatusCode: resp.StatusCode, Message: errorMessage(raw, resp.StatusCode)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}
