package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ProviderOpenAI, cfg.Model.Provider)
	assert.Equal(t, uint64(5000), cfg.Model.TimeoutMS)
	assert.Equal(t, DefaultAutoDelayMS, cfg.Trigger.AutoDelayMS)
	assert.True(t, cfg.Privacy.Sanitize)
	assert.True(t, cfg.Privacy.BlockDangerous)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "config.yml", `
model:
  provider: anthropic
  name: claude-sonnet-4-5
  api_key_env: ANTHROPIC_API_KEY
  timeout_ms: 3000
trigger:
  auto_delay_ms: 250
privacy:
  sanitize: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ProviderAnthropic, cfg.Model.Provider)
	assert.Equal(t, "claude-sonnet-4-5", cfg.Model.Name)
	assert.Equal(t, uint32(250), cfg.Trigger.AutoDelayMS)
	assert.False(t, cfg.Privacy.Sanitize)
	// Unset sections keep their defaults.
	assert.True(t, cfg.Context.IncludeCwdListing)
	assert.Equal(t, 20, cfg.Context.MaxFilesInListing)
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[model]
provider = "mock"

[trigger]
auto_delay_ms = 100
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ProviderMock, cfg.Model.Provider)
	assert.Equal(t, uint32(100), cfg.Trigger.AutoDelayMS)
}

func TestLoad_JSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{"model": {"provider": "openai", "name": "gpt-4o"}}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.Model.Name)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoad_BadSyntax(t *testing.T) {
	path := writeConfig(t, "config.yml", "model: [unclosed")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := writeConfig(t, "config.ini", "[model]\nprovider=openai")
	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config format")
}

func TestLoad_UnknownProvider(t *testing.T) {
	path := writeConfig(t, "config.yml", "model:\n  provider: carrier-pigeon\n  name: x\n")
	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown model provider")
}

func TestLoadDefault_NoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadDefault_WithFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "ghostline")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"),
		[]byte("trigger:\n  auto_delay_ms: 42\n"), 0600))

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), cfg.Trigger.AutoDelayMS)
}

func TestResolveAPIKey(t *testing.T) {
	t.Setenv("GHOSTLINE_TEST_KEY", "from-env")

	cfg := Default()
	cfg.Model.APIKeyEnv = "GHOSTLINE_TEST_KEY"
	assert.Equal(t, "from-env", cfg.ResolveAPIKey())

	// Literal key wins over the environment.
	cfg.Model.APIKey = "literal"
	assert.Equal(t, "literal", cfg.ResolveAPIKey())

	cfg.Model.APIKey = ""
	cfg.Model.APIKeyEnv = ""
	assert.Equal(t, "", cfg.ResolveAPIKey())
}

func TestAutoDelay(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 500*time.Millisecond, cfg.AutoDelay())

	cfg.Trigger.AutoDelayMS = 0
	assert.Equal(t, 500*time.Millisecond, cfg.AutoDelay())

	cfg.Trigger.AutoDelayMS = 150
	assert.Equal(t, 150*time.Millisecond, cfg.AutoDelay())
}

func TestTimeout(t *testing.T) {
	cfg := Default()
	cfg.Model.TimeoutMS = 250
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout())
}
