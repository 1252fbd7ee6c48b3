package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"app": {"auth_token": "file-token", "version": "2.0.0"},
		"server": {"http_address": "0.0.0.0:8081", "request_timeout": "45s"},
		"directory": {"disable_seed": true}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.App.AuthToken)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "0.0.0.0:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Directory.DisableSeed)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// durations may be given as raw nanoseconds
	path := writeConfigFile(t, `{"server": {"request_timeout": 30000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/does/not/exist.json")
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{"app": `)

	_, err := parseJSON(path)
	assert.Error(t, err)
}
