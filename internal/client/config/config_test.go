package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"client"}, args...)
}

func TestLoad_Defaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("API_BASE_URL", "")
	t.Setenv("STATE_PATH", "")
	t.Setenv("HTTP_TIMEOUT", "")

	cfg := Load()

	require.Equal(t, "http://localhost:8000/api/v1", cfg.BaseURL)
	require.Equal(t, "medium.db", cfg.StatePath)
	require.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("API_BASE_URL", "https://blog.example.com/api/v1")
	t.Setenv("HTTP_TIMEOUT", "5s")

	cfg := Load()

	require.Equal(t, "https://blog.example.com/api/v1", cfg.BaseURL)
	require.Equal(t, 5*time.Second, cfg.HTTPTimeout)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	resetArgs(t, "-a", "http://127.0.0.1:9000/api/v1", "-t", "10")
	t.Setenv("API_BASE_URL", "https://blog.example.com/api/v1")

	cfg := Load()

	require.Equal(t, "http://127.0.0.1:9000/api/v1", cfg.BaseURL)
	require.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}

func TestLoad_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"base_url": "http://json.example.com/api/v1",
		"state_path": "state.db",
		"http_timeout": "12s"
	}`), 0o600))

	resetArgs(t, "-c", path)
	t.Setenv("API_BASE_URL", "")
	t.Setenv("STATE_PATH", "")
	t.Setenv("HTTP_TIMEOUT", "")

	cfg := Load()

	require.Equal(t, "http://json.example.com/api/v1", cfg.BaseURL)
	require.Equal(t, "state.db", cfg.StatePath)
	require.Equal(t, 12*time.Second, cfg.HTTPTimeout)
}

func TestLoad_JSONPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"base_url": "http://json.example.com/api/v1"}`), 0o600))

	resetArgs(t, "-c", path)
	t.Setenv("API_BASE_URL", "")
	t.Setenv("STATE_PATH", "")
	t.Setenv("HTTP_TIMEOUT", "")

	cfg := Load()

	require.Equal(t, "http://json.example.com/api/v1", cfg.BaseURL)
	require.Equal(t, "medium.db", cfg.StatePath)
	require.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}
