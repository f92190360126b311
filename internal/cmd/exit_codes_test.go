package cmd

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/pflag"

	"github.com/socialwave/socialwave-cli/internal/api"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitOK},
		{"help requested", pflag.ErrHelp, exitOK},
		{"unauthorized", &api.APIError{Code: 401, Message: "INVALID_TOKEN"}, exitAuth},
		{"forbidden", &api.APIError{Code: 403, Message: "FORBIDDEN"}, exitForbidden},
		{"not found", &api.APIError{Code: 404, Message: "NOT_FOUND"}, exitNotFound},
		{"server error", &api.APIError{Code: 503, Message: "BUSY"}, exitServer},
		{"other api error", &api.APIError{Code: 422, Message: "invalid"}, exitGeneric},
		{"wrapped api error", fmt.Errorf("fetching: %w", &api.APIError{Code: 404, Message: "gone"}), exitNotFound},
		{"auth error", &api.AuthError{Message: "bad credentials"}, exitAuth},
		{"network error", &api.NetworkError{Message: "Network error: No response received"}, exitNetwork},
		{"deadline exceeded", context.DeadlineExceeded, exitNetwork},
		{"connection refused text", errors.New("dial tcp: connection refused"), exitNetwork},
		{"unknown flag", errors.New(`unknown flag: --bogus`), exitUsage},
		{"missing args", errors.New("requires at least 1 arg(s), only received 0"), exitUsage},
		{"generic", errors.New("something else"), exitGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
