package api

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func mustEnvelope(t *testing.T, raw string) *Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		t.Fatalf("failed to decode envelope %s: %v", raw, err)
	}
	return &env
}

func decodeAny(t *testing.T, raw json.RawMessage) any {
	t.Helper()
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("failed to decode payload %s: %v", raw, err)
	}
	return v
}

func TestCodeCoercion(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   int
		truthy bool
	}{
		{name: "numeric code", raw: `200`, want: 200, truthy: true},
		{name: "string code", raw: `"403"`, want: 403, truthy: true},
		{name: "string with spaces", raw: `" 500 "`, want: 500, truthy: true},
		{name: "zero code", raw: `0`, want: 0, truthy: false},
		{name: "string zero", raw: `"0"`, want: 0, truthy: false},
		{name: "non-numeric text", raw: `"ERR"`, want: 0, truthy: false},
		{name: "fractional number", raw: `200.5`, want: 0, truthy: false},
		{name: "null", raw: `null`, want: 0, truthy: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var code Code
			if err := json.Unmarshal([]byte(tt.raw), &code); err != nil {
				t.Fatalf("unexpected decode error: %v", err)
			}
			if code.Int() != tt.want {
				t.Errorf("Int() = %d, want %d", code.Int(), tt.want)
			}
			if code.Truthy() != tt.truthy {
				t.Errorf("Truthy() = %v, want %v", code.Truthy(), tt.truthy)
			}
		})
	}
}

func TestNormalizeSuccessShapes(t *testing.T) {
	tests := []struct {
		name     string
		envelope string
		want     any
	}{
		{
			name:     "payload under data",
			envelope: `{"status":"OK","code":200,"data":{"review":[{"id":"1","score":"5"}]}}`,
			want:     map[string]any{"review": []any{map[string]any{"id": "1", "score": "5"}}},
		},
		{
			name:     "payload under data with string code",
			envelope: `{"status":"OK","code":"200","data":{"name":"foo"}}`,
			want:     map[string]any{"name": "foo"},
		},
		{
			name:     "payload under response",
			envelope: `{"status":"OK","code":200,"response":{"total":3}}`,
			want:     map[string]any{"total": float64(3)},
		},
		{
			name:     "data null falls back to response",
			envelope: `{"status":"OK","code":200,"data":null,"response":{"total":3}}`,
			want:     map[string]any{"total": float64(3)},
		},
		{
			name:     "data wins over response",
			envelope: `{"status":"OK","code":200,"data":{"a":1},"response":{"b":2}}`,
			want:     map[string]any{"a": float64(1)},
		},
		{
			name:     "bare top-level payload fields",
			envelope: `{"status":"OK","code":200,"name":"foo"}`,
			want:     map[string]any{"name": "foo"},
		},
		{
			name:     "bare fields exclude null data and response",
			envelope: `{"status":"OK","code":200,"data":null,"response":null,"name":"foo","count":2}`,
			want:     map[string]any{"name": "foo", "count": float64(2)},
		},
		{
			name:     "scalar data payload",
			envelope: `{"status":"OK","code":200,"data":"token-abc"}`,
			want:     "token-abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := mustEnvelope(t, tt.envelope)
			payload, err := normalize(env)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := decodeAny(t, payload)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("payload = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestNormalizeFailures(t *testing.T) {
	tests := []struct {
		name        string
		envelope    string
		wantCode    int
		wantMessage string
	}{
		{
			name:        "empty success envelope",
			envelope:    `{"status":"OK","code":200}`,
			wantCode:    200,
			wantMessage: "Empty response: no data/response fields and no other payload",
		},
		{
			name:        "failure with string code and message",
			envelope:    `{"status":"FAIL","code":"403","message":"forbidden"}`,
			wantCode:    403,
			wantMessage: "forbidden",
		},
		{
			name:        "failure without message synthesizes one",
			envelope:    `{"status":"FAIL","code":500}`,
			wantCode:    500,
			wantMessage: "Unexpected response (code: 500, status: FAIL)",
		},
		{
			name:        "status not OK despite code 200",
			envelope:    `{"status":"PENDING","code":200,"data":{"a":1}}`,
			wantCode:    200,
			wantMessage: "Unexpected response (code: 200, status: PENDING)",
		},
		{
			name:        "code not 200 despite status OK",
			envelope:    `{"status":"OK","code":201,"data":{"a":1}}`,
			wantCode:    201,
			wantMessage: "Unexpected response (code: 201, status: OK)",
		},
		{
			name:        "unparseable code coerces to zero",
			envelope:    `{"status":"OK","code":"huh"}`,
			wantCode:    0,
			wantMessage: "Unexpected response (code: 0, status: OK)",
		},
		{
			name:        "missing status and code",
			envelope:    `{"data":{"a":1}}`,
			wantCode:    0,
			wantMessage: "Unexpected response (code: 0, status: )",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := mustEnvelope(t, tt.envelope)
			payload, err := normalize(env)
			if err == nil {
				t.Fatalf("expected error, got payload %s", payload)
			}
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %T: %v", err, err)
			}
			if apiErr.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", apiErr.Code, tt.wantCode)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
		})
	}
}

// normalize must be a pure function of its input: two calls on the same
// envelope agree, whether the envelope succeeds or fails.
func TestNormalizeIsPure(t *testing.T) {
	envelopes := []string{
		`{"status":"OK","code":200,"data":{"review":[{"id":"1"}]}}`,
		`{"status":"OK","code":200,"name":"foo"}`,
		`{"status":"OK","code":200}`,
		`{"status":"FAIL","code":"403","message":"forbidden"}`,
	}

	for _, raw := range envelopes {
		env := mustEnvelope(t, raw)

		payload1, err1 := normalize(env)
		payload2, err2 := normalize(env)

		if (err1 == nil) != (err2 == nil) {
			t.Fatalf("normalize not deterministic for %s: %v vs %v", raw, err1, err2)
		}
		if err1 != nil {
			var a1, a2 *APIError
			if !errors.As(err1, &a1) || !errors.As(err2, &a2) {
				t.Fatalf("expected *APIError twice for %s", raw)
			}
			if a1.Code != a2.Code || a1.Message != a2.Message {
				t.Errorf("errors differ for %s: %v vs %v", raw, a1, a2)
			}
			continue
		}
		if !reflect.DeepEqual(decodeAny(t, payload1), decodeAny(t, payload2)) {
			t.Errorf("payloads differ for %s: %s vs %s", raw, payload1, payload2)
		}
	}
}

func TestEnvelopeExtraExcludesControlFields(t *testing.T) {
	env := mustEnvelope(t, `{"status":"OK","code":200,"data":{"a":1},"response":{"b":2},"name":"foo"}`)

	if _, ok := env.Extra["status"]; ok {
		t.Error("Extra should not contain status")
	}
	if _, ok := env.Extra["code"]; ok {
		t.Error("Extra should not contain code")
	}
	if _, ok := env.Extra["data"]; ok {
		t.Error("Extra should not contain data")
	}
	if _, ok := env.Extra["response"]; ok {
		t.Error("Extra should not contain response")
	}
	if _, ok := env.Extra["name"]; !ok {
		t.Error("Extra should contain name")
	}
}
