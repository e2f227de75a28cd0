package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	app := newApp()

	assert.Equal(t, "ghostline", app.Name)
	names := make([]string, 0, len(app.Commands))
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"complete", "watch", "doctor", "validate", "schema"}, names)
}

func TestCompleteRequiresBuffer(t *testing.T) {
	app := newApp()

	err := app.Run(context.Background(), []string{"ghostline", "complete"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buffer argument required")
}

func TestSchemaCommandWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "schema.json")
	app := newApp()

	require.NoError(t, app.Run(context.Background(), []string{"ghostline", "schema", "-o", out}))

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Ghostline configuration")
}

func TestCompleteCommandWithMockProvider(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	cfg := `
model:
  provider: mock
  name: test-model
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	app := newApp()
	err := app.Run(context.Background(), []string{"ghostline", "-c", cfgPath, "complete", "git status"})
	require.NoError(t, err)
}
