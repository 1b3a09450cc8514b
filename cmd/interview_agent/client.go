package main

import (
	"fmt"
	"os"
	"time"

	"github.com/devmirai/interview-agent/internal/auth"
	"github.com/devmirai/interview-agent/internal/config"
	"github.com/devmirai/interview-agent/internal/gateway"
)

const defaultBaseURL = "http://localhost:8080"

// credentialsStore resolves the store location: explicit config path first,
// then the per-user default.
func credentialsStore(cfg config.Config) (*auth.Store, error) {
	path := cfg.CredentialsPath
	if path == "" {
		var err error
		path, err = auth.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return auth.NewStore(path), nil
}

// resolveToken picks the bearer token in priority order: config/flag value,
// DEVMIRAI_TOKEN environment variable, then the stored credentials.
func resolveToken(cfg config.Config) (string, error) {
	if cfg.Token != "" {
		return cfg.Token, nil
	}
	if env := os.Getenv("DEVMIRAI_TOKEN"); env != "" {
		return env, nil
	}

	store, err := credentialsStore(cfg)
	if err != nil {
		return "", err
	}
	creds, err := store.Load()
	if err != nil {
		return "", err
	}
	if creds == nil {
		return "", fmt.Errorf("not logged in: run 'interview_agent login' or set DEVMIRAI_TOKEN")
	}
	if auth.Expired(creds.Token, time.Now()) {
		return "", fmt.Errorf("stored token has expired: run 'interview_agent login' again")
	}
	return creds.Token, nil
}

// newGatewayClient builds the backend client from the merged configuration.
func newGatewayClient(cfg config.Config) (*gateway.Client, error) {
	token, err := resolveToken(cfg)
	if err != nil {
		return nil, err
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = os.Getenv("DEVMIRAI_BASE_URL")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	opts := gateway.DefaultOptions()
	opts.Token = func() string { return token }
	return gateway.New(baseURL, opts)
}

// loadMergedConfig loads the optional config file and applies it under the
// given overrides. The overrides come from explicitly set CLI flags.
func loadMergedConfig(path string, overrides config.Config) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}
	return overrides.MergeWithDefaults(cfg), nil
}
