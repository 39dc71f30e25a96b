package httpclient

import (
	"net/http"
	"time"
)

// Option configures a Client at construction time.
type Option func(*Client)

// WithBaseURL sets a prefix joined to every request path. A trailing slash
// is trimmed so that "https://host/v1" + "/users" composes cleanly.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = trimTrailingSlash(baseURL)
	}
}

// WithHeader adds a default header sent with every request. Per-request
// headers override defaults on conflict.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		if key != "" {
			c.headers[key] = value
		}
	}
}

// WithHeaders adds multiple default headers.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for k, v := range headers {
			if k != "" {
				c.headers[k] = v
			}
		}
	}
}

// WithTimeout sets the default per-request timeout. Default is 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithUserAgent overrides the User-Agent header sent by default.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient sets a custom underlying http.Client, e.g. for custom
// transports, proxies, or testing.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// RequestOption configures a single request.
type RequestOption func(*requestConfig)

type requestConfig struct {
	body    any
	hasBody bool
	headers map[string]string
	query   map[string]string
	timeout time.Duration
}

// WithBody sets the request body, JSON-encoded before sending. Content-Type
// defaults to application/json unless a header already set it.
func WithBody(v any) RequestOption {
	return func(rc *requestConfig) {
		rc.body = v
		rc.hasBody = true
	}
}

// WithRequestHeader adds a header for this request only, overriding any
// client default with the same name.
func WithRequestHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		if key != "" {
			rc.headers[key] = value
		}
	}
}

// WithQuery appends URL-encoded query parameters to the request URL.
func WithQuery(params map[string]string) RequestOption {
	return func(rc *requestConfig) {
		for k, v := range params {
			rc.query[k] = v
		}
	}
}

// WithRequestTimeout overrides the client's default timeout for this
// request.
func WithRequestTimeout(timeout time.Duration) RequestOption {
	return func(rc *requestConfig) {
		if timeout > 0 {
			rc.timeout = timeout
		}
	}
}
