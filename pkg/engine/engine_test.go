package engine

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmorelle/ghostline/internal/logger"
	"github.com/vmorelle/ghostline/pkg/config"
	"github.com/vmorelle/ghostline/pkg/gerrors"
	"github.com/vmorelle/ghostline/pkg/suggest"
)

// staticBackend always returns the same suggestion.
func staticBackend(command, warning string) suggest.Backend {
	return suggest.Func(func(_ context.Context, _ suggest.Request) (*suggest.Suggestion, error) {
		return &suggest.Suggestion{Command: command, Warning: warning}, nil
	})
}

func newTestEngine(t *testing.T, backend suggest.Backend) *Engine {
	t.Helper()
	return New(config.Default(), backend, logger.New("error", io.Discard))
}

func TestVersion(t *testing.T) {
	v := Version()
	assert.NotEmpty(t, v)
	assert.Equal(t, v, Version(), "version must be stable across calls")
}

func TestNewFillsDefaults(t *testing.T) {
	e := New(nil, staticBackend("ls", ""), nil)
	require.NotNil(t, e.Config())
	assert.Equal(t, config.DefaultAutoDelayMS, e.Config().Trigger.AutoDelayMS)
}

func TestOpenInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("model: [not a mapping"), 0o644))

	e, err := Open(path)
	require.Error(t, err)
	assert.Nil(t, e)
	assert.Equal(t, gerrors.ConfigLoadFailed, gerrors.KindOf(err))

	msg, ok := LastError()
	require.True(t, ok, "load failure must be recorded globally")
	assert.Contains(t, msg, "failed to load config")
}

func TestOpenMissingExplicitPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Equal(t, gerrors.ConfigLoadFailed, gerrors.KindOf(err))
}

func TestCloseIdempotent(t *testing.T) {
	e := newTestEngine(t, staticBackend("ls", ""))
	e.Close()
	e.Close()

	called := false
	err := e.Complete("ls", 2, "", "", func(_, _, _ string, _ any) {
		called = true
	}, nil)
	require.Error(t, err)
	assert.Equal(t, gerrors.ContextFreed, gerrors.KindOf(err))
	assert.False(t, called, "no callback on a closed handle")

	msg, ok := LastError()
	require.True(t, ok)
	assert.Contains(t, msg, "closed")
}

func TestErrSlotLastWriterWins(t *testing.T) {
	e := newTestEngine(t, staticBackend("ls", ""))

	require.Error(t, e.Complete("ls", 0, "", "", nil, nil))
	first, ok := e.Err()
	require.True(t, ok)

	require.Error(t, e.Complete("\xff", 0, "", "", func(_, _, _ string, _ any) {}, nil))
	second, ok := e.Err()
	require.True(t, ok)
	assert.NotEqual(t, first, second, "slot holds only the most recent failure")
	assert.Contains(t, second, "UTF-8")
}
