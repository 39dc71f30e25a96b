package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client performs HTTP requests against a configured base URL with default
// headers. It is a configuration holder: no state is kept across requests
// beyond the underlying http.Client's connection pool.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
	timeout    time.Duration
	userAgent  string
}

// New creates a Client. Without options it performs plain requests with a
// 30-second timeout and no base URL.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		headers:    make(map[string]string),
		timeout:    defaultTimeout,
		userAgent:  "utilkit-httpclient/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request performs one blocking HTTP round trip. The target URL is the
// client's base URL joined with path (or path alone when no base URL is
// set), plus any query parameters. Default and per-request headers are
// merged with per-request values winning. A body set via WithBody is
// JSON-encoded, defaulting Content-Type to application/json.
//
// A non-2xx status returns a nil Response and an *Error that carries the
// fully populated Response; a transport failure returns an *Error with no
// Response attached.
func (c *Client) Request(ctx context.Context, method, path string, opts ...RequestOption) (*Response, error) {
	cfg := &requestConfig{
		headers: make(map[string]string),
		query:   make(map[string]string),
		timeout: c.timeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	target := path
	if c.baseURL != "" {
		target = c.baseURL + path
	}

	if len(cfg.query) > 0 {
		values := url.Values{}
		for k, v := range cfg.query {
			values.Set(k, v)
		}
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + values.Encode()
	}

	var bodyReader io.Reader
	if cfg.hasBody {
		payload, err := json.Marshal(cfg.body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	reqCtx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, strings.ToUpper(method), target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range cfg.headers {
		req.Header.Set(k, v)
	}
	if cfg.hasBody && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// No response obtained at all: DNS, refused connection, timeout.
		return nil, &Error{Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("read response body: %v", err)}
	}

	finalURL := target
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
		URL:        finalURL,
	}

	if !response.OK() {
		return nil, &Error{
			Message:    http.StatusText(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Response:   response,
		}
	}

	return response, nil
}

// Get performs a GET request against path.
func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Request(ctx, http.MethodGet, path, opts...)
}

// Post performs a POST request against path.
func (c *Client) Post(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Request(ctx, http.MethodPost, path, opts...)
}

// Put performs a PUT request against path.
func (c *Client) Put(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Request(ctx, http.MethodPut, path, opts...)
}

// Delete performs a DELETE request against path.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Request(ctx, http.MethodDelete, path, opts...)
}

// Request performs a one-off request against a full URL using a fresh
// unconfigured client. There is no shared default client; each call
// constructs its own.
func Request(ctx context.Context, method, fullURL string, opts ...RequestOption) (*Response, error) {
	return New().Request(ctx, method, fullURL, opts...)
}

// Get performs a one-off GET request against a full URL.
func Get(ctx context.Context, fullURL string, opts ...RequestOption) (*Response, error) {
	return Request(ctx, http.MethodGet, fullURL, opts...)
}

// Post performs a one-off POST request against a full URL.
func Post(ctx context.Context, fullURL string, opts ...RequestOption) (*Response, error) {
	return Request(ctx, http.MethodPost, fullURL, opts...)
}

// Put performs a one-off PUT request against a full URL.
func Put(ctx context.Context, fullURL string, opts ...RequestOption) (*Response, error) {
	return Request(ctx, http.MethodPut, fullURL, opts...)
}

// Delete performs a one-off DELETE request against a full URL.
func Delete(ctx context.Context, fullURL string, opts ...RequestOption) (*Response, error) {
	return Request(ctx, http.MethodDelete, fullURL, opts...)
}

// trimTrailingSlash normalizes a base URL so path joining is predictable.
func trimTrailingSlash(s string) string {
	return strings.TrimRight(s, "/")
}
