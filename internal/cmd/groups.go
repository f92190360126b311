package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGroupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Aliases: []string{"group", "gr"},
		Short:   "Manage community groups",
	}

	cmd.AddCommand(newGroupsListCmd())
	cmd.AddCommand(newGroupsGetCmd())
	cmd.AddCommand(newGroupsCreateCmd())
	cmd.AddCommand(newGroupsJoinCmd())
	cmd.AddCommand(newGroupsLeaveCmd())

	return cmd
}

func newGroupsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List community groups",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			groups, err := client.Groups().List(cmdContext(cmd))
			if err != nil {
				return fmt.Errorf("failed to list groups: %w", err)
			}

			if isJSON(cmd) {
				return printJSON(cmd, groups)
			}
			if len(groups) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No groups found")
				return nil
			}
			for _, group := range groups {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (%d members)\n", group.ID, group.Name, group.MemberCount)
			}
			return nil
		},
	}
}

func newGroupsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Aliases: []string{"g"},
		Short:   "Get group details",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			group, err := client.Groups().Get(cmdContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get group %s: %w", args[0], err)
			}

			if isJSON(cmd) {
				return printJSON(cmd, group)
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Group %s\n", group.ID)
			_, _ = fmt.Fprintf(out, "  Name:        %s\n", group.Name)
			_, _ = fmt.Fprintf(out, "  Description: %s\n", group.Description)
			_, _ = fmt.Fprintf(out, "  Members:     %d\n", group.MemberCount)
			return nil
		},
	}
}

func newGroupsCreateCmd() *cobra.Command {
	var (
		name        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a community group",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			client, err := getClient()
			if err != nil {
				return err
			}

			group, err := client.Groups().Create(cmdContext(cmd), name, description)
			if err != nil {
				return fmt.Errorf("failed to create group: %w", err)
			}

			if isJSON(cmd) {
				return printJSON(cmd, group)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created group %s\n", group.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Group name")
	cmd.Flags().StringVar(&description, "description", "", "Group description")

	return cmd
}

func newGroupsJoinCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "join <id>",
		Short: "Add a customer to a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return fmt.Errorf("--email is required")
			}

			client, err := getClient()
			if err != nil {
				return err
			}

			if err := client.Groups().Join(cmdContext(cmd), args[0], email); err != nil {
				return fmt.Errorf("failed to join group %s: %w", args[0], err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s to group %s\n", email, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Customer email")

	return cmd
}

func newGroupsLeaveCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "leave <id>",
		Short: "Remove a customer from a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return fmt.Errorf("--email is required")
			}

			client, err := getClient()
			if err != nil {
				return err
			}

			if err := client.Groups().Leave(cmdContext(cmd), args[0], email); err != nil {
				return fmt.Errorf("failed to leave group %s: %w", args[0], err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from group %s\n", email, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Customer email")

	return cmd
}
