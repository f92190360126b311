// Package cmd implements the sw command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/socialwave/socialwave-cli/internal/api"
	"github.com/socialwave/socialwave-cli/internal/config"
	"github.com/socialwave/socialwave-cli/internal/debug"
)

// version is set at build time via ldflags
var version = "dev"

// rootFlags holds global CLI flags
type rootFlags struct {
	Output  string
	JSON    bool
	JQ      string
	Debug   bool
	BaseURL string
	Timeout time.Duration
}

// flags holds the global command flags. This is package-level mutable state
// that MUST be reset at the start of every Execute() call. Tests depend on
// this reset to get clean state.
var flags = rootFlags{
	Output:  defaultOutput(),
	Timeout: api.DefaultTimeout,
}

func defaultOutput() string {
	value := strings.ToLower(strings.TrimSpace(os.Getenv("SOCIALWAVE_OUTPUT")))
	if value == "json" {
		return "json"
	}
	return "text"
}

// Execute runs the root command
func Execute(ctx context.Context, args []string) error {
	// Reset flags to defaults for each execution, see the invariant comment
	// on the flags declaration above.
	flags = rootFlags{
		Output:  defaultOutput(),
		Timeout: api.DefaultTimeout,
	}

	root := &cobra.Command{
		Use:           "sw",
		Short:         "CLI for the Socialwave reviews and Q&A platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if flags.JSON {
				flags.Output = "json"
			}
			switch flags.Output {
			case "text", "json":
			default:
				return fmt.Errorf("invalid output format %q (expected text or json)", flags.Output)
			}
			if flags.JQ != "" && flags.Output != "json" {
				flags.Output = "json"
			}

			debug.SetupLogger(flags.Debug)
			cmd.SetContext(debug.WithDebug(cmd.Context(), flags.Debug))
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&flags.Output, "output", "o", flags.Output, "Output format: text|json (env SOCIALWAVE_OUTPUT)")
	root.PersistentFlags().BoolVarP(&flags.JSON, "json", "j", false, "Shorthand for --output json")
	root.PersistentFlags().StringVarP(&flags.JQ, "jq", "q", "", "JQ expression to filter JSON output")
	root.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flags.BaseURL, "base-url", "", "Override Socialwave base URL")
	root.PersistentFlags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "HTTP request timeout (e.g., 30s, 2m)")

	root.AddCommand(newAuthCmd())
	root.AddCommand(newReviewsCmd())
	root.AddCommand(newProductsCmd())
	root.AddCommand(newOrdersCmd())
	root.AddCommand(newGroupsCmd())
	root.AddCommand(newQuestionsCmd())
	root.AddCommand(newVersionCmd())

	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// getClient builds an API client from stored credentials, env overrides,
// and global flags.
func getClient() (*api.Client, error) {
	cfg, err := config.ResolveClientConfig(flags.BaseURL)
	if err != nil {
		return nil, err
	}
	client := api.New(cfg.BaseURL)
	if cfg.AccessToken != "" {
		client.SetAccessToken(cfg.AccessToken)
	}
	if flags.Timeout > 0 {
		client.HTTP.Timeout = flags.Timeout
	}
	client.UserAgent = fmt.Sprintf("socialwave-cli/%s", version)
	return client, nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
