// Package engine implements the Ghostline session engine: a long-lived
// handle that owns configuration, diagnostic error slots and the live-typing
// debounce machinery around a suggestion backend.
//
// One Engine corresponds to one shell session. All methods are safe for
// concurrent use. Per handle, at most one completion (manual or autonomous)
// is in flight at a time.
package engine

import (
	"sync"

	"github.com/vmorelle/ghostline/internal/logger"
	"github.com/vmorelle/ghostline/pkg/config"
	"github.com/vmorelle/ghostline/pkg/gerrors"
	"github.com/vmorelle/ghostline/pkg/suggest"
	"github.com/vmorelle/ghostline/pkg/version"
)

// Callback receives one completion result. Exactly one of suggestion or
// errMsg is meaningful: on success errMsg is empty and warning may carry a
// danger notice; on failure suggestion and warning are empty. An empty string
// means absent. The arguments are only guaranteed stable for the duration of
// the call; callers wanting retention should copy.
type Callback func(suggestion, warning, errMsg string, userData any)

// Engine is an opaque session handle.
type Engine struct {
	mu       sync.Mutex // guards auto state, lastSuggestion and closed
	inflight sync.Mutex // serializes pipeline invocations for this handle

	cfg     *config.Config
	backend suggest.Backend
	log     *logger.Logger

	errs           errorSlot
	closed         bool
	auto           autoState
	lastSuggestion string
}

// Open creates an engine from a config file. An empty path means the default
// location, with built-in defaults when no file exists there. On failure the
// reason is retrievable via LastError.
func Open(configPath string) (*Engine, error) {
	globalErrors.clear()

	var cfg *config.Config
	var err error
	if configPath == "" {
		cfg, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(configPath)
	}
	if err != nil {
		e := gerrors.Wrap(gerrors.ConfigLoadFailed, "failed to load config", err)
		globalErrors.set(e.Kind(), e.Error())
		return nil, e
	}

	log := logger.New(cfg.Log.Level, nil)
	backend, err := suggest.NewEngine(cfg, log)
	if err != nil {
		e := gerrors.Wrap(gerrors.RuntimeCreateFailed, "failed to create suggestion backend", err)
		globalErrors.set(e.Kind(), e.Error())
		return nil, e
	}

	return New(cfg, backend, log), nil
}

// New creates an engine around an existing backend. Intended for embedders
// and tests; Open is the usual entry point.
func New(cfg *config.Config, backend suggest.Backend, log *logger.Logger) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.New(cfg.Log.Level, nil)
	}
	return &Engine{
		cfg:     cfg,
		backend: backend,
		log:     log,
	}
}

// Close destroys the handle. Idempotent. Any scheduled autonomous fire is
// cancelled; every later operation fails with ContextFreed.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.auto.invalidateLocked()
	e.auto.phase = phaseInactive
	e.auto.pending = nil
	e.lastSuggestion = ""
}

// Err returns the most recent failure recorded on this handle, valid until
// the next failing operation on it overwrites the slot.
func (e *Engine) Err() (string, bool) {
	return e.errs.get()
}

// Config returns the engine configuration. Immutable after creation.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// Version returns the library version string. Stable for the process
// lifetime.
func Version() string {
	return version.Version
}

// checkOpen fails with ContextFreed when the handle has been closed. Closed
// handles have conceptually lost their error slot, so the failure is
// recorded at the global scope.
func (e *Engine) checkOpen() error {
	e.mu.Lock()
	closed := e.closed
	e.mu.Unlock()
	if closed {
		err := gerrors.New(gerrors.ContextFreed, "engine is closed")
		globalErrors.set(err.Kind(), err.Error())
		return err
	}
	return nil
}

// fail records err on the handle slot and returns it.
func (e *Engine) fail(err *gerrors.Error) error {
	e.errs.set(err.Kind(), err.Error())
	e.log.Debug().Str("kind", err.Kind().String()).Err(err).Msg("operation failed")
	return err
}

// invoke calls the callback, containing any panic so nothing escapes the
// engine boundary.
func (e *Engine) invoke(cb Callback, suggestion, warning, errMsg string, userData any) {
	defer func() {
		if r := recover(); r != nil {
			e.errs.set(gerrors.Runtime, "panic in completion callback")
			e.log.Error().Str("panic", "callback").Msg("recovered panic in completion callback")
		}
	}()
	cb(suggestion, warning, errMsg, userData)
}
