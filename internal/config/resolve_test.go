package config

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/99designs/keyring"
)

func storedRing(t *testing.T, account Account) keyring.Keyring {
	t.Helper()
	data, err := json.Marshal(account)
	if err != nil {
		t.Fatalf("marshal account: %v", err)
	}
	return keyring.NewArrayKeyring([]keyring.Item{{Key: accountKey, Data: data}})
}

func TestResolveClientConfigFromStore(t *testing.T) {
	clearEnv(t)
	withMockKeyring(t, storedRing(t, Account{BaseURL: "https://stored.example", AccessToken: "stored-tok"}))

	cfg, err := ResolveClientConfig("")
	if err != nil {
		t.Fatalf("ResolveClientConfig failed: %v", err)
	}
	if cfg.BaseURL != "https://stored.example" || cfg.AccessToken != "stored-tok" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestResolveClientConfigEnvOverridesStore(t *testing.T) {
	withMockKeyring(t, storedRing(t, Account{BaseURL: "https://stored.example", AccessToken: "stored-tok"}))
	t.Setenv(envBaseURL, "https://env.example/")
	t.Setenv(envAccessToken, "env-tok")

	cfg, err := ResolveClientConfig("")
	if err != nil {
		t.Fatalf("ResolveClientConfig failed: %v", err)
	}
	if cfg.BaseURL != "https://env.example" || cfg.AccessToken != "env-tok" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestResolveClientConfigFlagOverridesEverything(t *testing.T) {
	withMockKeyring(t, storedRing(t, Account{BaseURL: "https://stored.example", AccessToken: "stored-tok"}))
	t.Setenv(envBaseURL, "https://env.example")
	t.Setenv(envAccessToken, "env-tok")

	cfg, err := ResolveClientConfig("https://flag.example/")
	if err != nil {
		t.Fatalf("ResolveClientConfig failed: %v", err)
	}
	if cfg.BaseURL != "https://flag.example" {
		t.Errorf("BaseURL = %q, want flag override", cfg.BaseURL)
	}
	if cfg.AccessToken != "env-tok" {
		t.Errorf("AccessToken = %q", cfg.AccessToken)
	}
}

func TestResolveClientConfigNotConfigured(t *testing.T) {
	clearEnv(t)
	withMockKeyring(t, keyring.NewArrayKeyring(nil))

	_, err := ResolveClientConfig("")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}

func TestResolveClientConfigFlagWithoutStore(t *testing.T) {
	clearEnv(t)
	withMockKeyring(t, keyring.NewArrayKeyring(nil))

	cfg, err := ResolveClientConfig("https://flag.example")
	if err != nil {
		t.Fatalf("ResolveClientConfig failed: %v", err)
	}
	if cfg.BaseURL != "https://flag.example" || cfg.AccessToken != "" {
		t.Errorf("cfg = %+v", cfg)
	}
}
