package debug

import (
	"context"
	"testing"
)

func TestWithDebug(t *testing.T) {
	ctx := context.Background()

	if IsEnabled(ctx) {
		t.Error("debug should be disabled by default")
	}
	if !IsEnabled(WithDebug(ctx, true)) {
		t.Error("debug should be enabled")
	}
	if IsEnabled(WithDebug(ctx, false)) {
		t.Error("debug should be disabled")
	}
}
