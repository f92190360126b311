package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Code is the envelope status code as it appears on the wire: either a JSON
// number or a string of decimal digits. The single coercion step happens
// here, at decode time, so callers only ever compare integers.
type Code struct {
	value  int
	parsed bool
}

// UnmarshalJSON coerces the wire value to an integer. A value that cannot be
// coerced (non-digit text, fractional number) leaves the code unparsed,
// which the success test treats as a failure since it never equals 200.
func (c *Code) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	if s[0] == '"' {
		var text string
		if err := json.Unmarshal(b, &text); err != nil {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return nil
		}
		c.value = n
		c.parsed = true
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return nil
	}
	n, err := num.Int64()
	if err != nil {
		return nil
	}
	c.value = int(n)
	c.parsed = true
	return nil
}

// Int returns the coerced code, or 0 when the wire value was absent or
// could not be coerced.
func (c Code) Int() int {
	if !c.parsed {
		return 0
	}
	return c.value
}

// Truthy reports whether the code was coerced to a non-zero integer. It
// mirrors the backend's convention of treating 0 and missing as "no code".
func (c Code) Truthy() bool {
	return c.parsed && c.value != 0
}

// Envelope is the decoded body of every Socialwave response. The backend
// wraps payloads in one of three shapes: under "data", under "response", or
// as bare fields alongside "status"/"code". Extra holds every top-level
// field except status, code, data and response so the bare shape can be
// reconstructed.
type Envelope struct {
	Status   string
	Code     Code
	Message  string
	Data     json.RawMessage
	Response json.RawMessage
	Extra    map[string]json.RawMessage
}

// UnmarshalJSON decodes the envelope from an arbitrary JSON object.
// Non-object bodies fail to decode; the request path reports those as an
// unparseable response rather than attempting normalization.
func (e *Envelope) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	for key, raw := range fields {
		switch key {
		case "status":
			if err := json.Unmarshal(raw, &e.Status); err != nil {
				// Non-string status: keep the raw text so synthesized
				// failure messages still show what the server sent.
				e.Status = string(bytes.TrimSpace(raw))
			}
		case "code":
			_ = e.Code.UnmarshalJSON(raw)
		case "data":
			if !isJSONNull(raw) {
				e.Data = raw
			}
		case "response":
			if !isJSONNull(raw) {
				e.Response = raw
			}
		default:
			if key == "message" {
				_ = json.Unmarshal(raw, &e.Message)
			}
			if e.Extra == nil {
				e.Extra = make(map[string]json.RawMessage)
			}
			e.Extra[key] = raw
		}
	}
	return nil
}

func isJSONNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// normalize applies the envelope success contract and extracts the payload.
//
// The call succeeded iff the coerced code is 200 and status is exactly "OK".
// On success the payload is, in order of precedence: the "data" field, the
// "response" field, or the remaining top-level fields. An otherwise-empty
// success envelope and every failed envelope yield an *APIError.
func normalize(env *Envelope) (json.RawMessage, error) {
	code := env.Code.Int()
	if code != 200 || env.Status != "OK" {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("Unexpected response (code: %d, status: %s)", code, env.Status)
		}
		return nil, &APIError{Code: code, Message: msg}
	}

	if len(env.Data) > 0 {
		return env.Data, nil
	}
	if len(env.Response) > 0 {
		return env.Response, nil
	}
	if len(env.Extra) > 0 {
		payload, err := json.Marshal(env.Extra)
		if err != nil {
			return nil, &APIError{Code: code, Message: fmt.Sprintf("invalid payload fields: %v", err)}
		}
		return payload, nil
	}
	return nil, &APIError{Code: code, Message: "Empty response: no data/response fields and no other payload"}
}
