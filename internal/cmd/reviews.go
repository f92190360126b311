package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/socialwave/socialwave-cli/internal/api"
	"github.com/socialwave/socialwave-cli/internal/resolve"
)

func newReviewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reviews",
		Aliases: []string{"review", "r"},
		Short:   "Manage product reviews",
		Long:    "List, inspect, create, and reply to product reviews.",
	}

	cmd.AddCommand(newReviewsListCmd())
	cmd.AddCommand(newReviewsGetCmd())
	cmd.AddCommand(newReviewsCreateCmd())
	cmd.AddCommand(newReviewsReplyCmd())
	cmd.AddCommand(newReviewsMediaCmd())
	cmd.AddCommand(newReviewsDeleteCmd())
	cmd.AddCommand(newReviewsBulkGetCmd())

	return cmd
}

func newReviewsListCmd() *cobra.Command {
	var (
		product  string
		page     int
		count    int
		minScore int
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List reviews",
		Example: strings.TrimSpace(`
  # List all reviews
  sw reviews list

  # Reviews for a product, matched by title
  sw reviews list --product "blue mug"

  # JSON output filtered with jq
  sw reviews list -o json --jq '.review[].score'
`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			ctx := cmdContext(cmd)

			params := api.ListReviewsParams{Page: page, Count: count, MinScore: minScore}
			if product != "" {
				key, err := resolveProductKey(ctx, client, product)
				if err != nil {
					return err
				}
				params.ProductKey = key
			}

			result, err := client.Reviews().List(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to list reviews: %w", err)
			}

			if isJSON(cmd) {
				return printJSON(cmd, result)
			}
			if len(result.Review) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No reviews found")
				return nil
			}
			for _, review := range result.Review {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s/5  %s  %s\n", review.ID, review.Score, review.Author, review.Title)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&product, "product", "", "Filter by product (key or fuzzy title match)")
	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&count, "count", 0, "Results per page")
	cmd.Flags().IntVar(&minScore, "min-score", 0, "Only reviews with at least this score")

	return cmd
}

func newReviewsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <key>",
		Aliases: []string{"g"},
		Short:   "Get review details",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			review, err := client.Reviews().Get(cmdContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get review %s: %w", args[0], err)
			}

			if isJSON(cmd) {
				return printJSON(cmd, review)
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Review %s\n", review.ID)
			_, _ = fmt.Fprintf(out, "  Author:  %s\n", review.Author)
			_, _ = fmt.Fprintf(out, "  Score:   %s/5\n", review.Score)
			_, _ = fmt.Fprintf(out, "  Title:   %s\n", review.Title)
			_, _ = fmt.Fprintf(out, "  Content: %s\n", review.Content)
			if review.Reply != "" {
				_, _ = fmt.Fprintf(out, "  Reply:   %s\n", review.Reply)
			}
			return nil
		},
	}
}

func newReviewsCreateCmd() *cobra.Command {
	var (
		productKey string
		author     string
		email      string
		score      int
		title      string
		content    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a review",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if productKey == "" || author == "" {
				return fmt.Errorf("--product-key and --author are required")
			}
			if score < 1 || score > 5 {
				return fmt.Errorf("--score must be between 1 and 5")
			}

			client, err := getClient()
			if err != nil {
				return err
			}

			review, err := client.Reviews().Create(cmdContext(cmd), productKey, author, email, score, title, content)
			if err != nil {
				return fmt.Errorf("failed to create review: %w", err)
			}

			if isJSON(cmd) {
				return printJSON(cmd, review)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created review %s\n", review.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&productKey, "product-key", "", "Product key the review belongs to")
	cmd.Flags().StringVar(&author, "author", "", "Reviewer display name")
	cmd.Flags().StringVar(&email, "email", "", "Reviewer email")
	cmd.Flags().IntVar(&score, "score", 0, "Review score (1-5)")
	cmd.Flags().StringVar(&title, "title", "", "Review title")
	cmd.Flags().StringVar(&content, "content", "", "Review body")

	return cmd
}

func newReviewsReplyCmd() *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "reply <key>",
		Short: "Reply to a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if content == "" {
				return fmt.Errorf("--content is required")
			}

			client, err := getClient()
			if err != nil {
				return err
			}

			review, err := client.Reviews().Reply(cmdContext(cmd), args[0], content)
			if err != nil {
				return fmt.Errorf("failed to reply to review %s: %w", args[0], err)
			}

			if isJSON(cmd) {
				return printJSON(cmd, review)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Replied to review %s\n", review.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Reply text")

	return cmd
}

func newReviewsMediaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-media <key> <file>...",
		Short: "Attach images to a review",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			files := make(map[string][]byte, len(args)-1)
			for _, path := range args[1:] {
				content, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}
				files[path] = content
			}

			client, err := getClient()
			if err != nil {
				return err
			}

			media, err := client.Reviews().AddMedia(cmdContext(cmd), args[0], files)
			if err != nil {
				return fmt.Errorf("failed to attach media: %w", err)
			}

			if isJSON(cmd) {
				return printJSON(cmd, media)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Attached %d file(s)\n", len(media))
			return nil
		},
	}
	return cmd
}

func newReviewsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <key>",
		Aliases: []string{"rm"},
		Short:   "Delete a review",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			if err := client.Reviews().Delete(cmdContext(cmd), args[0]); err != nil {
				return fmt.Errorf("failed to delete review %s: %w", args[0], err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted review %s\n", args[0])
			return nil
		},
	}
}

// resolveProductKey accepts either a product key or a fuzzy title query and
// returns the product key.
func resolveProductKey(ctx context.Context, client *api.Client, query string) (string, error) {
	// Exact key lookup first; fall back to fuzzy title matching.
	if product, err := client.Products().Get(ctx, query); err == nil {
		return product.Key, nil
	}

	list, err := client.Products().List(ctx, api.ListProductsParams{})
	if err != nil {
		return "", fmt.Errorf("failed to list products for matching: %w", err)
	}
	items := make([]resolve.Named, len(list.Products))
	for i, p := range list.Products {
		items[i] = resolve.Named{Key: p.Key, Name: p.Title}
	}
	return resolve.FuzzyMatch(query, items)
}
