package api

import (
	"context"
	"net/url"
)

// Requester is the request surface resource helpers depend on: the four
// entry points of the client. Resource code never builds HTTP requests
// itself and never sees raw transport errors, only the typed errors the
// entry points produce.
type Requester interface {
	// Get performs a GET request, forwarding query parameters as-is.
	Get(ctx context.Context, path string, query url.Values, result any) error

	// PostJSON performs a POST request with a JSON body.
	PostJSON(ctx context.Context, path string, body any, result any) error

	// PostForm performs a POST request with an url-encoded form body.
	PostForm(ctx context.Context, path string, form map[string]string, result any) error

	// PostMultipart performs a multipart/form-data POST request with
	// fields and file attachments.
	PostMultipart(ctx context.Context, path string, fields map[string]string, files map[string][]byte, result any) error
}

// Compile-time interface implementation check
var _ Requester = (*Client)(nil)
