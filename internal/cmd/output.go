package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/socialwave/socialwave-cli/internal/filter"
)

func isJSON(_ *cobra.Command) bool {
	return flags.Output == "json"
}

// printJSON renders v as indented JSON on the command's stdout, applying
// the global --jq expression when one is set.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	if flags.JQ != "" {
		data, err = filter.ApplyToJSON(data, flags.JQ)
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
