package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// The SDK surfaces exactly four error kinds. The set is flat and closed so
// callers can branch exhaustively with the Is* helpers: Error is the generic
// SDK failure, APIError carries the server's numeric code, AuthError marks a
// failed credential exchange, and NetworkError means no response arrived.

// Error is the base SDK error: a message plus an optional wrapped cause.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// APIError is a failure the server signalled explicitly, either inside a
// 2xx envelope or via an HTTP error status. Code is the envelope's coerced
// code when one was present, otherwise the raw HTTP status.
type APIError struct {
	Code    int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (code %d): %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// AuthError wraps any failure from the token-acquisition call. It is only
// constructed by Account.Login.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication error: %s", e.Message)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NetworkError means no response was received at all (connection failure,
// timeout) or an unrecognized failure occurred before a response could be
// interpreted.
type NetworkError struct {
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	return e.Message
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsAPIError checks if the error is (or wraps) an API error.
func IsAPIError(err error) bool {
	var e *APIError
	return errors.As(err, &e)
}

// IsAuthError checks if the error is (or wraps) an authentication error.
func IsAuthError(err error) bool {
	var e *AuthError
	return errors.As(err, &e)
}

// IsNetworkError checks if the error is (or wraps) a network error.
func IsNetworkError(err error) bool {
	var e *NetworkError
	return errors.As(err, &e)
}

// IsNotFound checks if the error is an API error with code 404.
func IsNotFound(err error) bool {
	var e *APIError
	return errors.As(err, &e) && e.Code == 404
}

// IsUnauthorized checks if the error is an API error with code 401.
func IsUnauthorized(err error) bool {
	var e *APIError
	return errors.As(err, &e) && e.Code == 401
}

// errorFromResponse translates a received HTTP error response into an
// APIError. The body is decoded as an envelope on a best-effort basis: a
// truthy envelope code wins over the HTTP status, and the envelope's status
// text wins over the generic status description.
//
// Note the asymmetry with normalize, which prefers the envelope's "message"
// field: this path is triggered by raw HTTP error statuses while normalize
// handles failures inside 2xx envelopes, and the backend populates the two
// differently. Keep them separate.
func errorFromResponse(statusCode int, body []byte) *APIError {
	var env Envelope
	_ = json.Unmarshal(body, &env)

	code := statusCode
	if env.Code.Truthy() {
		code = env.Code.Int()
	}

	msg := env.Status
	if msg == "" {
		msg = http.StatusText(statusCode)
	}
	if msg == "" {
		msg = "Request failed"
	}
	return &APIError{Code: code, Message: msg}
}

// translate converts any failure caught on the request path into one of the
// typed error kinds. Already-typed errors pass through unchanged; an HTTP
// transport failure (request sent, no response) becomes a NetworkError with
// a fixed message; anything else becomes a NetworkError carrying the
// original message and cause. It never returns an untyped error.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return err
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return err
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &NetworkError{Message: "Network error: No response received", Err: err}
	}

	msg := err.Error()
	if msg == "" {
		msg = "Unknown error"
	}
	return &NetworkError{Message: msg, Err: err}
}

// wrapServiceErr applies the resource-layer propagation policy: API errors
// pass through with their code and message intact, everything else is
// wrapped in a base Error with a uniform message and the original chained
// as the cause.
func wrapServiceErr(err error) error {
	if err == nil {
		return nil
	}
	if IsAPIError(err) {
		return err
	}
	return &Error{Message: "Network error", Err: err}
}
