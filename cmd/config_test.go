package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pteropackages/soar/pkg/config"
	"github.com/pteropackages/soar/pkg/exit"
)

func TestConfigSet(t *testing.T) {
	setupTestEnv(t, "https://panel.example.com")

	t.Run("global", func(t *testing.T) {
		out, err := runCommand(t, "config", "set", "logs.show_http", "true")
		require.NoError(t, err)
		assert.Contains(t, out, "updated global config: logs.show_http = true")

		cfg, err := config.Load(false)
		require.NoError(t, err)
		assert.True(t, cfg.Logs.ShowHTTP)
	})

	t.Run("key is masked in output", func(t *testing.T) {
		out, err := runCommand(t, "config", "set", "client.key", "ptlc_abc")
		require.NoError(t, err)
		assert.Contains(t, out, "client.key = ••••••••")
		assert.NotContains(t, out, "ptlc_abc")
	})

	t.Run("local overlay", func(t *testing.T) {
		_, err := runCommand(t, "config", "set", "application.url", "https://local.example.com", "--local")
		require.NoError(t, err)

		global, err := config.Load(false)
		require.NoError(t, err)
		assert.Equal(t, "https://panel.example.com", global.Application.URL)

		merged, err := config.Load(true)
		require.NoError(t, err)
		assert.Equal(t, "https://local.example.com", merged.Application.URL)
		assert.Equal(t, "ptla_test", merged.Application.Key)
	})

	t.Run("local overlay keeps global auth", func(t *testing.T) {
		_, err := runCommand(t, "config", "set", "logs.show_debug", "true", "--local")
		require.NoError(t, err)

		data, err := os.ReadFile(config.LocalFileName)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "key:")

		merged, err := config.Load(true)
		require.NoError(t, err)
		assert.True(t, merged.Logs.ShowDebug)
		assert.Equal(t, "https://local.example.com", merged.Application.URL)
		assert.Equal(t, "ptla_test", merged.Application.Key)
		assert.Equal(t, "ptlc_abc", merged.Client.Key)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := runCommand(t, "config", "set", "logs.nope", "true")
		require.Error(t, err)
		assert.Equal(t, exit.ArgumentError, exitCode(err))
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := runCommand(t, "config", "set", "application.url", "panel.example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "application.url")
	})
}

func TestConfigInfo(t *testing.T) {
	setupTestEnv(t, "https://panel.example.com")

	out, err := runCommand(t, "config", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "Soar Global Config")
	assert.Contains(t, out, "https://panel.example.com")
	assert.Contains(t, out, "ptla_test")

	out, err = runCommand(t, "config", "info", "--hide")
	require.NoError(t, err)
	assert.NotContains(t, out, "ptla_test")
	assert.Contains(t, out, "•••••••••")

	out, err = runCommand(t, "config", "info", "--local")
	require.NoError(t, err)
	assert.Contains(t, out, "Soar Local Config")
	assert.Contains(t, out, "Not Set")

	out, err = runCommand(t, "config", "info", "--yaml", "--hide")
	require.NoError(t, err)
	assert.Contains(t, out, "url: https://panel.example.com")
	assert.NotContains(t, out, "ptla_test")
}

func TestConfigKeys(t *testing.T) {
	setupTestEnv(t, "")

	out, err := runCommand(t, "config", "keys")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(config.Keys()))
	assert.Contains(t, out, "http.timeout (default: 30s)")
	assert.Contains(t, out, "application.url\n")
}

func TestConfigSetupLocal(t *testing.T) {
	t.Run("copies global", func(t *testing.T) {
		dir := setupTestEnv(t, "https://panel.example.com")

		out, err := runCommand(t, "config", "setup", "--local")
		require.NoError(t, err)
		assert.Contains(t, out, "setup a new local config at:")

		local, err := config.LoadLocal()
		require.NoError(t, err)
		assert.Equal(t, "https://panel.example.com", local.Application.URL)

		info, err := os.Stat(filepath.Join(dir, config.LocalFileName))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("existing file declined", func(t *testing.T) {
		setupTestEnv(t, "https://panel.example.com")
		require.NoError(t, os.WriteFile(config.LocalFileName, []byte("client:\n  url: https://keep.example.com\n"), 0600))
		promptInput = strings.NewReader("n\n")

		out, err := runCommand(t, "config", "setup", "--local")
		require.NoError(t, err)
		assert.Contains(t, out, "existing local config file found")

		local, err := config.LoadLocal()
		require.NoError(t, err)
		assert.Equal(t, "https://keep.example.com", local.Client.URL)
	})

	t.Run("forced with link", func(t *testing.T) {
		dir := setupTestEnv(t, "https://panel.example.com")
		linked := filepath.Join(dir, "other.yml")
		require.NoError(t, os.WriteFile(linked, []byte("client:\n  url: https://linked.example.com\n"), 0600))
		require.NoError(t, os.WriteFile(config.LocalFileName, []byte("version: \"1\"\n"), 0600))

		out, err := runCommand(t, "config", "setup", "--local", "--force", "--link", linked)
		require.NoError(t, err)
		assert.Contains(t, out, "overwrite mode forced")

		local, err := config.LoadLocal()
		require.NoError(t, err)
		assert.Equal(t, "https://linked.example.com", local.Client.URL)
	})

	t.Run("missing link", func(t *testing.T) {
		setupTestEnv(t, "")

		_, err := runCommand(t, "config", "setup", "--local", "--link", "nope.yml")
		assert.Equal(t, exit.NotFound, exitCode(err))
	})
}

func TestConfigSetupGlobal(t *testing.T) {
	setupTestEnv(t, "https://old.example.com")
	promptInput = strings.NewReader("y\nhttps://new.example.com\nptla_new\n\n\n")

	out, err := runCommand(t, "config", "setup")
	require.NoError(t, err)
	assert.Contains(t, out, "saved global config at:")

	cfg, err := config.Load(false)
	require.NoError(t, err)
	assert.Equal(t, "https://new.example.com", cfg.Application.URL)
	assert.Equal(t, "ptla_new", cfg.Application.Key)
	assert.Equal(t, "https://old.example.com", cfg.Client.URL)
	assert.Equal(t, "ptlc_test", cfg.Client.Key)
}
