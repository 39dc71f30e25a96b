// Package httpclient is a minimal synchronous HTTP client for JSON APIs.
// It wraps net/http with base-URL joining, default header merging, JSON
// body encoding, and a response type that exposes status, headers, raw
// body, and decoded views.
//
// The client performs exactly one blocking round trip per call: no
// retries, no backoff, no redirect policy beyond what net/http applies
// itself. Failures come in two distinguishable shapes: a server replied
// with a non-2xx status (the *Error carries the full Response for
// inspection), or the transport produced nothing at all (DNS failure,
// refused connection, timeout; the *Error has no Response).
//
// # Usage
//
//	client := httpclient.New(
//		httpclient.WithBaseURL("https://api.example.com/v1"),
//		httpclient.WithHeader("Authorization", "Bearer token123"),
//	)
//
//	resp, err := client.Get(ctx, "/users", httpclient.WithQuery(map[string]string{"page": "1"}))
//	if err != nil {
//		var httpErr *httpclient.Error
//		if errors.As(err, &httpErr) && httpErr.Response != nil {
//			// server responded; inspect httpErr.StatusCode and body
//		}
//		return err
//	}
//
//	var users []User
//	if err := resp.JSON(&users); err != nil {
//		return err
//	}
//
// One-off requests without client configuration use the package-level
// helpers, which construct a fresh unconfigured client per call:
//
//	resp, err := httpclient.Post(ctx, "https://api.example.com/users",
//		httpclient.WithBody(map[string]string{"name": "Alice"}))
//
// # Thread Safety
//
// A Client is immutable after New and safe for concurrent use; the
// underlying http.Client handles connection reuse.
package httpclient
