package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/socialwave/socialwave-cli/internal/debug"
)

// DefaultTimeout is the fixed request timeout baked into every client.
const DefaultTimeout = 30 * time.Second

// Client is the Socialwave API client. All requests funnel through four
// entry points (Get, PostJSON, PostMultipart, PostForm) that share one
// response-normalization path, so every failure a caller sees is either an
// *APIError or a *NetworkError.
//
// The access token is a single mutable field read once per request at
// dispatch time; requests already in flight keep the token they were sent
// with.
type Client struct {
	BaseURL   string
	HTTP      *http.Client
	UserAgent string

	tokenMu     sync.RWMutex
	accessToken string
}

// New creates a new Socialwave API client.
func New(baseURL string) *Client {
	baseTransport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		baseTransport = &http.Transport{}
	}
	transport := baseTransport.Clone()
	if transport.TLSClientConfig == nil {
		transport.TLSClientConfig = &tls.Config{}
	} else {
		transport.TLSClientConfig = transport.TLSClientConfig.Clone()
	}
	transport.TLSClientConfig.MinVersion = tls.VersionTLS12

	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTP: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: transport,
		},
	}
}

// SetAccessToken replaces the token injected into outgoing requests. The
// replacement is atomic: there is never more than one active token, and
// once a token has been set every subsequent request carries one.
func (c *Client) SetAccessToken(token string) {
	c.tokenMu.Lock()
	c.accessToken = token
	c.tokenMu.Unlock()
}

// AccessToken returns the currently configured access token.
func (c *Client) AccessToken() string {
	c.tokenMu.RLock()
	defer c.tokenMu.RUnlock()
	return c.accessToken
}

// buildURL joins the relative path to the base URL and injects the access
// token as the access_token query parameter. Set (not Add) guarantees a
// single injection even if the caller supplied its own token value.
func (c *Client) buildURL(path string, query url.Values) (string, error) {
	u, err := url.Parse(c.BaseURL + "/" + strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid request URL: %w", err)
	}
	q := u.Query()
	for key, values := range query {
		for _, v := range values {
			q.Set(key, v)
		}
	}
	if token := c.AccessToken(); token != "" {
		q.Set("access_token", token)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Get performs a GET request, forwarding query parameters as-is.
func (c *Client) Get(ctx context.Context, path string, query url.Values, result any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", result)
}

// PostJSON performs a POST request with a JSON-serialized body.
func (c *Client) PostJSON(ctx context.Context, path string, body any, result any) error {
	var jsonBody []byte
	if body != nil {
		var err error
		jsonBody, err = json.Marshal(body)
		if err != nil {
			return translate(fmt.Errorf("failed to marshal request body: %w", err))
		}
	}
	return c.do(ctx, http.MethodPost, path, nil, jsonBody, "application/json", result)
}

// PostForm performs a POST request with a flat key-value mapping serialized
// as application/x-www-form-urlencoded.
func (c *Client) PostForm(ctx context.Context, path string, form map[string]string, result any) error {
	values := url.Values{}
	for key, value := range form {
		values.Set(key, value)
	}
	return c.do(ctx, http.MethodPost, path, nil, []byte(values.Encode()), "application/x-www-form-urlencoded", result)
}

// PostMultipart performs a multipart POST request with form fields and file
// attachments.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, files map[string][]byte, result any) error {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return translate(fmt.Errorf("failed to write field %s: %w", key, err))
		}
	}
	for filename, content := range files {
		part, err := writer.CreateFormFile("media[]", filename)
		if err != nil {
			return translate(fmt.Errorf("failed to create form file %s: %w", filename, err))
		}
		if _, err := part.Write(content); err != nil {
			return translate(fmt.Errorf("failed to write file content %s: %w", filename, err))
		}
	}
	if err := writer.Close(); err != nil {
		return translate(fmt.Errorf("failed to close multipart writer: %w", err))
	}

	return c.do(ctx, http.MethodPost, path, nil, body.Bytes(), writer.FormDataContentType(), result)
}

// do executes a single request and applies the normalization contract: a
// received non-2xx response becomes an *APIError, a transport failure
// becomes a *NetworkError, and a 2xx body is decoded as an envelope whose
// payload is unmarshaled into result.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, contentType string, result any) error {
	reqURL, err := c.buildURL(path, query)
	if err != nil {
		return translate(err)
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return translate(fmt.Errorf("failed to create request: %w", err))
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		if debug.IsEnabled(ctx) {
			slog.Debug("request failed", "method", method, "path", path, "error", err)
		}
		return translate(err)
	}

	respBody, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return translate(fmt.Errorf("failed to read response: %w", err))
	}
	if debug.IsEnabled(ctx) {
		slog.Debug("request complete", "method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorFromResponse(resp.StatusCode, respBody)
	}

	var env Envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		// Unparseable success body: surface the transport status as the code.
		return &APIError{Code: resp.StatusCode, Message: "Unexpected response (unparseable body)", Err: err}
	}

	payload, err := normalize(&env)
	if err != nil {
		return err
	}
	if result != nil && len(payload) > 0 {
		if err := json.Unmarshal(payload, result); err != nil {
			return translate(fmt.Errorf("unexpected API response format (JSON decode failed): %w", err))
		}
	}
	return nil
}
