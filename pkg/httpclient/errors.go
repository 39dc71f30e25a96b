package httpclient

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 is returned by Response.Text when the body is not valid
// UTF-8.
var ErrInvalidUTF8 = errors.New("response body is not valid UTF-8")

// Error describes a failed request. When the server produced a response
// (any non-2xx status), Response carries it in full and StatusCode is set;
// when the transport failed outright, Response is nil and StatusCode is
// zero. JSON and UTF-8 decoding problems are reported by the codecs
// themselves, never wrapped into this type.
type Error struct {
	Message    string
	StatusCode int
	Response   *Response
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("http request failed: %d %s", e.StatusCode, e.Message)
	}
	return "http request failed: " + e.Message
}

// AsError unwraps err into an *Error if it is one.
func AsError(err error) (*Error, bool) {
	var httpErr *Error
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
