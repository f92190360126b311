package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/socialwave/socialwave-cli/internal/api"
	"github.com/socialwave/socialwave-cli/internal/config"
)

// newAuthCmd returns the auth command with subcommands
func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "auth",
		Aliases: []string{"au"},
		Short:   "Manage authentication credentials",
		Long:    "Exchange Socialwave API credentials for an access token and store it securely in your OS keychain.",
	}

	cmd.AddCommand(newAuthLoginCmd())
	cmd.AddCommand(newAuthStatusCmd())
	cmd.AddCommand(newAuthLogoutCmd())

	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	var (
		baseURL      string
		clientID     string
		clientSecret string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with client credentials",
		Long: strings.TrimSpace(`
Exchange a Socialwave client ID and secret for an access token and save the
credentials to your OS keychain. You can find the client credentials in the
Socialwave dashboard under Settings > API.
`),
		Example: strings.TrimSpace(`
  # Authenticate against the default endpoint
  sw auth login --base-url https://api.socialwave.io/api/v2 --client-id KEY --client-secret SECRET
`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			baseURL = strings.TrimSpace(baseURL)
			if baseURL == "" {
				baseURL = flags.BaseURL
			}
			if baseURL == "" {
				return fmt.Errorf("--base-url is required")
			}
			if clientID == "" || clientSecret == "" {
				return fmt.Errorf("--client-id and --client-secret are required")
			}

			client, err := getClientForBase(baseURL)
			if err != nil {
				return err
			}
			token, err := client.Account().Login(cmdContext(cmd), clientID, clientSecret)
			if err != nil {
				return err
			}

			account := config.Account{
				BaseURL:      baseURL,
				ClientID:     clientID,
				ClientSecret: clientSecret,
				AccessToken:  token,
			}
			if err := config.SaveAccount(account); err != nil {
				return fmt.Errorf("authenticated, but failed to store credentials: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged in. Credentials stored in your OS keychain.")
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Socialwave API base URL")
	cmd.Flags().StringVar(&clientID, "client-id", "", "API client ID")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "API client secret")

	return cmd
}

func newAuthStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show authentication status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			account, err := config.LoadAccount()
			if err != nil {
				return err
			}

			client, err := getClientForBase(account.BaseURL)
			if err != nil {
				return err
			}
			client.SetAccessToken(account.AccessToken)

			info, err := client.Account().View(cmdContext(cmd))
			if err != nil {
				return fmt.Errorf("stored credentials rejected: %w", err)
			}

			if isJSON(cmd) {
				return printJSON(cmd, info)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s as %s (%s)\n", account.BaseURL, info.Name, info.Email)
			return nil
		},
	}
}

func newAuthLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.DeleteAccount(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

// getClientForBase builds a client for an explicit base URL, bypassing the
// stored configuration. Used before credentials exist.
func getClientForBase(baseURL string) (*api.Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	client := api.New(baseURL)
	if flags.Timeout > 0 {
		client.HTTP.Timeout = flags.Timeout
	}
	client.UserAgent = fmt.Sprintf("socialwave-cli/%s", version)
	return client, nil
}
