package cmd

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestRunBulkOperation_PreservesInputOrder(t *testing.T) {
	keys := []string{"e", "d", "c", "b", "a"}
	results := runBulkOperation(context.Background(), keys, 3,
		func(ctx context.Context, key string) (string, error) {
			return "value-" + key, nil
		})

	if len(results) != len(keys) {
		t.Fatalf("got %d results, want %d", len(results), len(keys))
	}
	for i, r := range results {
		if r.Key != keys[i] {
			t.Errorf("results[%d].Key = %s, want %s", i, r.Key, keys[i])
		}
		if !r.Success {
			t.Errorf("results[%d] not successful: %s", i, r.Error)
		}
	}
}

func TestRunBulkOperation_CollectsFailures(t *testing.T) {
	results := runBulkOperation(context.Background(), []string{"good", "bad"}, 2,
		func(ctx context.Context, key string) (string, error) {
			if key == "bad" {
				return "", errors.New("boom")
			}
			return "ok", nil
		})

	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	if !results[0].Success || results[0].Key != "good" {
		t.Errorf("results[0] = %+v", results[0])
	}
	if results[1].Success || results[1].Error != "boom" {
		t.Errorf("results[1] = %+v", results[1])
	}
}

func TestRunBulkOperation_BoundsConcurrency(t *testing.T) {
	var active, peak int64
	var mu sync.Mutex

	keys := []string{"1", "2", "3", "4", "5", "6", "7", "8"}
	results := runBulkOperation(context.Background(), keys, 2,
		func(ctx context.Context, key string) (struct{}, error) {
			n := atomic.AddInt64(&active, 1)
			mu.Lock()
			if n > peak {
				peak = n
			}
			mu.Unlock()
			defer atomic.AddInt64(&active, -1)
			return struct{}{}, nil
		})

	if len(results) != len(keys) {
		t.Fatalf("got %d results", len(results))
	}
	mu.Lock()
	defer mu.Unlock()
	if peak > 2 {
		t.Errorf("peak concurrency = %d, want <= 2", peak)
	}
}

func TestRunBulkOperation_DefaultConcurrency(t *testing.T) {
	results := runBulkOperation(context.Background(), []string{"a"}, 0,
		func(ctx context.Context, key string) (string, error) {
			return "ok", nil
		})
	if len(results) != 1 || !results[0].Success {
		t.Fatalf("results = %+v", results)
	}
}

func TestRunBulkOperation_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := runBulkOperation(ctx, []string{"a", "b"}, 1,
		func(ctx context.Context, key string) (string, error) {
			t.Error("operation should not run after cancellation")
			return "", nil
		})
	if len(results) != 0 {
		t.Errorf("results = %+v, want none", results)
	}
}
