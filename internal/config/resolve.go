package config

import (
	"fmt"
	"os"
	"strings"
)

// ClientConfig contains resolved API client settings.
type ClientConfig struct {
	BaseURL     string
	AccessToken string
}

// ResolveClientConfig resolves client settings from the stored account and
// environment, applying an optional base URL override from the command line.
func ResolveClientConfig(baseURLOverride string) (ClientConfig, error) {
	var cfg ClientConfig

	account, err := LoadAccount()
	if err == nil {
		cfg.BaseURL = account.BaseURL
		cfg.AccessToken = account.AccessToken
	}

	if envURL := strings.TrimSpace(os.Getenv(envBaseURL)); envURL != "" {
		cfg.BaseURL = strings.TrimSuffix(envURL, "/")
	}
	if envToken := strings.TrimSpace(os.Getenv(envAccessToken)); envToken != "" {
		cfg.AccessToken = envToken
	}
	if baseURLOverride != "" {
		cfg.BaseURL = strings.TrimSuffix(baseURLOverride, "/")
	}

	if cfg.BaseURL == "" {
		if err != nil {
			return ClientConfig{}, err
		}
		return ClientConfig{}, fmt.Errorf("base URL not configured (set %s, run 'sw auth login', or pass --base-url)", envBaseURL)
	}
	return cfg, nil
}
