package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_Defaults(t *testing.T) {
	data := &Data{
		Version:        "1.0.0",
		GitCommit:      "abc1234",
		BuildTime:      "2026-01-01",
		ConfigPath:     "/home/user/.config/ghostline/config.yml",
		ConfigExists:   false,
		ConfigValid:    true,
		Provider:       "openai",
		Model:          "gpt-4o-mini",
		APIKeySet:      false,
		TimeoutMS:      5000,
		AutoDelayMS:    500,
		Sanitize:       true,
		BlockDangerous: true,
		LogLevel:       "warn",
	}

	output := Render(data)

	assert.Contains(t, output, "Ghostline")
	assert.Contains(t, output, "1.0.0")
	assert.Contains(t, output, "abc1234")
	assert.Contains(t, output, "Configuration:")
	assert.Contains(t, output, "not found, using built-in defaults")
	assert.Contains(t, output, "Model:")
	assert.Contains(t, output, "gpt-4o-mini")
	assert.Contains(t, output, "Not set")
	assert.Contains(t, output, "api_key_env")
	assert.Contains(t, output, "Behavior:")
	assert.Contains(t, output, "500 ms")

	// No on-disk file section and no endpoint line
	assert.NotContains(t, output, "Schema:")
	assert.NotContains(t, output, "Endpoint:")
}

func TestRender_ValidConfig(t *testing.T) {
	data := &Data{
		Version:      "1.0.0",
		ConfigPath:   "/etc/ghostline.yml",
		ConfigExists: true,
		ConfigValid:  true,
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-20250514",
		Endpoint:     "https://proxy.internal/v1",
		APIKeySet:    true,
	}

	output := Render(data)

	assert.Contains(t, output, "✓ Valid")
	assert.Contains(t, output, "anthropic")
	assert.Contains(t, output, "https://proxy.internal/v1")
	assert.Contains(t, output, "✓ Set")
	assert.NotContains(t, output, "Invalid")
}

func TestRender_InvalidConfig(t *testing.T) {
	data := &Data{
		Version:      "1.0.0",
		ConfigPath:   "/etc/ghostline.yml",
		ConfigExists: true,
		ConfigValid:  false,
		ConfigErrors: []string{"model.provider: must be one of openai, anthropic, mock"},
	}

	output := Render(data)

	assert.Contains(t, output, "✗ Invalid")
	assert.Contains(t, output, "model.provider")
}
