package cmd

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/socialwave/socialwave-cli/internal/api"
)

// defaultConcurrency is the default number of concurrent workers
const defaultConcurrency = 5

// bulkResult represents the outcome of a single bulk operation
type bulkResult struct {
	Key     string `json:"key"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// runBulkOperation executes operations concurrently with bounded parallelism.
// Results are returned in input order regardless of completion order.
func runBulkOperation[T any](
	ctx context.Context,
	keys []string,
	concurrency int64,
	operation func(ctx context.Context, key string) (T, error),
) []bulkResult {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	sem := semaphore.NewWeighted(concurrency)
	var mu sync.Mutex
	results := make([]bulkResult, 0, len(keys))
	order := make(map[string]int, len(keys))
	for i, key := range keys {
		order[key] = i
	}

	g, ctx := errgroup.WithContext(ctx)

	for _, key := range keys {
		key := key
		g.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return nil // context cancelled, don't add to results
			}
			defer sem.Release(1)

			if ctx.Err() != nil {
				return nil
			}

			data, err := operation(ctx, key)

			mu.Lock()
			if err != nil {
				results = append(results, bulkResult{Key: key, Error: err.Error()})
			} else {
				results = append(results, bulkResult{Key: key, Success: true, Data: data})
			}
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()

	sort.Slice(results, func(i, j int) bool {
		return order[results[i].Key] < order[results[j].Key]
	})
	return results
}

func newReviewsBulkGetCmd() *cobra.Command {
	var concurrency int64

	cmd := &cobra.Command{
		Use:   "bulk-get <key>...",
		Short: "Fetch multiple reviews concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			results := runBulkOperation(cmdContext(cmd), args, concurrency,
				func(ctx context.Context, key string) (*api.Review, error) {
					return client.Reviews().Get(ctx, key)
				})

			if isJSON(cmd) {
				return printJSON(cmd, results)
			}

			failed := 0
			for _, r := range results {
				if r.Success {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", r.Key)
				} else {
					failed++
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", r.Key, r.Error)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d reviews failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&concurrency, "concurrency", defaultConcurrency, "Maximum concurrent requests")

	return cmd
}
