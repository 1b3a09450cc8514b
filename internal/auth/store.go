// Package auth persists the candidate's credentials between CLI invocations.
package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Profile is the candidate identity attached to the stored token.
type Profile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Credentials is what the login flow stores on disk.
type Credentials struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}

// Store reads and writes credentials at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath is the per-user credentials location, under the home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".devmirai", "credentials.json"), nil
}

// Load reads the stored credentials. A missing file is not an error: it
// returns (nil, nil) so callers can distinguish "not logged in" from a
// corrupt store.
func (s *Store) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}
	if creds.Token == "" {
		return nil, fmt.Errorf("credentials file has no token")
	}
	return &creds, nil
}

// Save writes the credentials with owner-only permissions, creating parent
// directories as needed.
func (s *Store) Save(creds *Credentials) error {
	if creds == nil || creds.Token == "" {
		return fmt.Errorf("cannot save empty credentials")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	return nil
}

// Clear removes the stored credentials. Clearing an absent store is a no-op.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credentials: %w", err)
	}
	return nil
}

// Expired reports whether the token carries an exp claim in the past. The
// token is not verified here; the backend is the authority, this only lets
// the CLI prompt for a fresh login instead of failing a request. Tokens
// without an exp claim, or that do not parse, are treated as unexpired and
// left for the backend to reject.
func Expired(token string, now time.Time) bool {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}
