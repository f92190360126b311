package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/socialwave/socialwave-cli/internal/api"
)

func newProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product", "p"},
		Short:   "Inspect products and their review stats",
	}

	cmd.AddCommand(newProductsListCmd())
	cmd.AddCommand(newProductsGetCmd())
	cmd.AddCommand(newProductsReviewsCmd())
	cmd.AddCommand(newProductsSummaryCmd())

	return cmd
}

func newProductsListCmd() *cobra.Command {
	var (
		page  int
		count int
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List products",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			result, err := client.Products().List(cmdContext(cmd), api.ListProductsParams{Page: page, Count: count})
			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}

			if isJSON(cmd) {
				return printJSON(cmd, result)
			}
			if len(result.Products) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No products found")
				return nil
			}
			for _, product := range result.Products {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", product.Key, product.Title)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&count, "count", 0, "Results per page")

	return cmd
}

func newProductsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <key>",
		Aliases: []string{"g"},
		Short:   "Get product details",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			product, err := client.Products().Get(cmdContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get product %s: %w", args[0], err)
			}

			if isJSON(cmd) {
				return printJSON(cmd, product)
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Product %s\n", product.Key)
			_, _ = fmt.Fprintf(out, "  Title:  %s\n", product.Title)
			_, _ = fmt.Fprintf(out, "  Vendor: %s\n", product.Vendor)
			_, _ = fmt.Fprintf(out, "  URL:    %s\n", product.URL)
			return nil
		},
	}
}

func newProductsReviewsCmd() *cobra.Command {
	var (
		page  int
		count int
	)

	cmd := &cobra.Command{
		Use:   "reviews <key>",
		Short: "List the reviews for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			result, err := client.Products().Reviews(cmdContext(cmd), args[0], api.ListReviewsParams{Page: page, Count: count})
			if err != nil {
				return fmt.Errorf("failed to list reviews for %s: %w", args[0], err)
			}

			if isJSON(cmd) {
				return printJSON(cmd, result)
			}
			for _, review := range result.Review {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s/5  %s\n", review.ID, review.Score, review.Title)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&count, "count", 0, "Results per page")

	return cmd
}

func newProductsSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <key>",
		Short: "Show the aggregated rating for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			summary, err := client.Products().RatingSummary(cmdContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get rating summary for %s: %w", args[0], err)
			}

			if isJSON(cmd) {
				return printJSON(cmd, summary)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s/5 from %d reviews\n",
				summary.ProductKey, summary.AverageScore, summary.ReviewCount)
			return nil
		},
	}
}
