package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"base_url": "https://api.devmirai.example",
		"role": "Backend Engineer",
		"duration_seconds": 1800,
		"difficulty": 7,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://api.devmirai.example", cfg.BaseURL)
	assert.Equal(t, "Backend Engineer", cfg.Role)
	assert.Equal(t, 1800, cfg.DurationSeconds)
	assert.Equal(t, 7, cfg.Difficulty)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestLoadConfig_RelativePath(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.json"), []byte(`{}`), 0644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := LoadConfig("config.json")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty config is valid", Config{}, ""},
		{"full valid config", Config{BaseURL: "http://localhost:8080", DurationSeconds: 3600, Difficulty: 5}, ""},
		{"negative duration", Config{DurationSeconds: -1}, "duration_seconds"},
		{"difficulty too high", Config{Difficulty: 11}, "difficulty"},
		{"difficulty negative", Config{Difficulty: -2}, "difficulty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_CredentialsDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := Config{CredentialsPath: filepath.Join(tmpDir, "credentials.json")}
	assert.NoError(t, cfg.Validate())

	cfg.CredentialsPath = filepath.Join(tmpDir, "missing", "credentials.json")
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credentials directory not found")
}

func TestConfig_MergeWithDefaults(t *testing.T) {
	cfg := Config{
		BaseURL:    "http://localhost:8080",
		Difficulty: 8,
	}
	defaults := Config{
		BaseURL:         "https://api.devmirai.example",
		Token:           "default-token",
		Role:            "Developer",
		DurationSeconds: 3600,
		Difficulty:      5,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "http://localhost:8080", merged.BaseURL, "explicit value wins")
	assert.Equal(t, "default-token", merged.Token)
	assert.Equal(t, "Developer", merged.Role)
	assert.Equal(t, 3600, merged.DurationSeconds)
	assert.Equal(t, 8, merged.Difficulty, "explicit value wins")

	// Merge does not mutate the receiver.
	assert.Empty(t, cfg.Token)
}
