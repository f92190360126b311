package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/socialwave/socialwave-cli/internal/api"
)

func newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order", "or"},
		Short:   "Report and inspect orders",
		Long:    "Report purchases to Socialwave so review-request emails can be scheduled, and inspect previously reported orders.",
	}

	cmd.AddCommand(newOrdersCreateCmd())
	cmd.AddCommand(newOrdersGetCmd())
	cmd.AddCommand(newOrdersListCmd())

	return cmd
}

func newOrdersCreateCmd() *cobra.Command {
	var (
		id       string
		email    string
		name     string
		total    string
		currency string
		items    string
	)

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Report a new order",
		Example: `  sw orders create --id 1001 --email jo@example.com --items '[{"product_key":"mug-1","quantity":2}]'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if id == "" || email == "" {
				return fmt.Errorf("--id and --email are required")
			}

			var orderItems []api.OrderItem
			if items != "" {
				if err := json.Unmarshal([]byte(items), &orderItems); err != nil {
					return fmt.Errorf("invalid --items JSON: %w", err)
				}
			}

			client, err := getClient()
			if err != nil {
				return err
			}

			order, err := client.Orders().Create(cmdContext(cmd), api.CreateOrderParams{
				ID:       id,
				Email:    email,
				Name:     name,
				Total:    total,
				Currency: currency,
				Items:    orderItems,
			})
			if err != nil {
				return fmt.Errorf("failed to create order: %w", err)
			}

			if isJSON(cmd) {
				return printJSON(cmd, order)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reported order %s\n", order.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Order ID from the store")
	cmd.Flags().StringVar(&email, "email", "", "Customer email")
	cmd.Flags().StringVar(&name, "name", "", "Customer name")
	cmd.Flags().StringVar(&total, "total", "", "Order total")
	cmd.Flags().StringVar(&currency, "currency", "", "Currency code")
	cmd.Flags().StringVar(&items, "items", "", "Order line items as a JSON array")

	return cmd
}

func newOrdersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Aliases: []string{"g"},
		Short:   "Get order details",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			order, err := client.Orders().Get(cmdContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get order %s: %w", args[0], err)
			}

			if isJSON(cmd) {
				return printJSON(cmd, order)
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Order %s\n", order.ID)
			_, _ = fmt.Fprintf(out, "  Customer: %s <%s>\n", order.Name, order.Email)
			_, _ = fmt.Fprintf(out, "  Total:    %s %s\n", order.Total, order.Currency)
			for _, item := range order.Items {
				_, _ = fmt.Fprintf(out, "  - %dx %s (%s)\n", item.Quantity, item.Title, item.ProductKey)
			}
			return nil
		},
	}
}

func newOrdersListCmd() *cobra.Command {
	var (
		page  int
		count int
		email string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List orders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			result, err := client.Orders().List(cmdContext(cmd), api.ListOrdersParams{Page: page, Count: count, Email: email})
			if err != nil {
				return fmt.Errorf("failed to list orders: %w", err)
			}

			if isJSON(cmd) {
				return printJSON(cmd, result)
			}
			if len(result.Orders) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No orders found")
				return nil
			}
			for _, order := range result.Orders {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s %s\n", order.ID, order.Email, order.Total, order.Currency)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&count, "count", 0, "Results per page")
	cmd.Flags().StringVar(&email, "email", "", "Filter by customer email")

	return cmd
}
