package httpclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"unicode/utf8"
)

// Response is an immutable snapshot of one completed request.
type Response struct {
	// StatusCode is the HTTP status code, e.g. 200 or 404.
	StatusCode int
	// Headers holds the response headers as returned by the transport.
	Headers http.Header
	// Body is the raw response body.
	Body []byte
	// URL is the final URL after any redirects the transport followed.
	URL string
}

// OK reports whether the status code is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Text returns the body decoded as UTF-8. Invalid bytes yield
// ErrInvalidUTF8 rather than a silently mangled string.
func (r *Response) Text() (string, error) {
	if !utf8.Valid(r.Body) {
		return "", ErrInvalidUTF8
	}
	return string(r.Body), nil
}

// JSON unmarshals the body into v. Malformed JSON surfaces as the codec's
// own error, distinct from *Error.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// String implements fmt.Stringer.
func (r *Response) String() string {
	return fmt.Sprintf("<Response [%d]>", r.StatusCode)
}
