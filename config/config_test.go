package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exaroton.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Empty(t, cfg.Token)
	assert.Equal(t, "https://api.exaroton.com/v1/", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, "token: file-token\ntimeout: 10s\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file-token", cfg.Token)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "https://api.exaroton.com/v1/", cfg.BaseURL)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "token: file-token\n")
	t.Setenv("EXAROTON_TOKEN", "env-token")
	t.Setenv("EXAROTON_BASE_URL", "https://staging.example.test/v1/")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, "https://staging.example.test/v1/", cfg.BaseURL)
}

func TestLoad_EnvironmentOnly(t *testing.T) {
	t.Setenv("EXAROTON_TOKEN", "env-token")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Token)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.Error(t, cfg.Validate())

	cfg.Token = "abc"
	require.NoError(t, cfg.Validate())

	cfg.BaseURL = ""
	require.Error(t, cfg.Validate())
}

func TestLoader_ReloadsOnWrite(t *testing.T) {
	path := writeConfigFile(t, "token: first-token\n")

	loader, err := NewLoader(path, zap.NewNop())
	require.NoError(t, err)
	defer loader.Stop()

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "first-token", cfg.Token)

	reloaded := make(chan *Config, 1)
	require.NoError(t, loader.StartWatching(func(c *Config) error {
		select {
		case reloaded <- c:
		default:
		}
		return nil
	}))

	require.NoError(t, os.WriteFile(path, []byte("token: second-token\n"), 0o644))

	select {
	case c := <-reloaded:
		assert.Equal(t, "second-token", c.Token)
	case <-time.After(5 * time.Second):
		t.Fatal("configuration change was not observed")
	}

	assert.Equal(t, "second-token", loader.Current().Token)
}

func TestLoader_RejectsInvalidInitialConfig(t *testing.T) {
	path := writeConfigFile(t, "base_url: https://example.test/\n")

	loader, err := NewLoader(path, zap.NewNop())
	require.NoError(t, err)
	defer loader.Stop()

	_, err = loader.Load()
	require.Error(t, err)
}
