package engine

import (
	"time"

	"github.com/vmorelle/ghostline/pkg/config"
	"github.com/vmorelle/ghostline/pkg/gerrors"
	"github.com/vmorelle/ghostline/pkg/suggest"
)

// phase is the debounce state machine phase.
type phase int

const (
	// phaseInactive: auto mode never started for this cycle.
	phaseInactive phase = iota
	// phaseArmed: started, waiting for the first (or next) buffer update.
	phaseArmed
	// phasePending: a snapshot is queued and the timer is counting down.
	phasePending
	// phaseStopped: terminal until the next AutoStart.
	phaseStopped
)

// autoState is the debounce state machine. Owned by exactly one Engine and
// guarded by its mu.
type autoState struct {
	phase    phase
	delay    time.Duration
	cb       Callback
	userData any
	pending  *suggest.Request
	deadline time.Time
	timer    *time.Timer
	// cycle increments on every transition that invalidates a scheduled
	// fire. A fire only proceeds when the cycle it captured is still
	// current, which makes stop/restart race-free without timer-thread
	// coordination.
	cycle uint64
}

// invalidateLocked cancels any scheduled fire. Caller holds the engine mu.
func (a *autoState) invalidateLocked() {
	a.cycle++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

// AutoStart begins (or restarts) live-typing mode. delayMS of zero means the
// configured delay. The callback and userData are fixed for this cycle;
// starting again replaces the previous cycle entirely, discarding its timer
// and callback.
func (e *Engine) AutoStart(delayMS uint32, cb Callback, userData any) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	if cb == nil {
		return e.fail(gerrors.New(gerrors.NullPointer, "auto mode callback is nil"))
	}

	delay := e.cfg.AutoDelay()
	if delayMS > 0 {
		delay = time.Duration(delayMS) * time.Millisecond
	}

	e.mu.Lock()
	e.auto.invalidateLocked()
	e.auto.delay = delay
	e.auto.cb = cb
	e.auto.userData = userData
	e.auto.pending = nil
	e.auto.deadline = time.Time{}
	e.auto.phase = phaseArmed
	e.mu.Unlock()

	e.log.Debug().Dur("delay", delay).Msg("auto mode started")
	return nil
}

// AutoUpdateBuffer replaces the pending snapshot and resets the debounce
// deadline. Rapid successive calls coalesce: only the last snapshot within a
// quiet period is completed. A buffer update invalidates the previous
// suggestion, so the last-suggestion slot is cleared.
func (e *Engine) AutoUpdateBuffer(buffer string, cursor int, cwd, sessionID string) error {
	if err := e.checkOpen(); err != nil {
		return err
	}

	e.mu.Lock()
	if e.auto.phase == phaseInactive || e.auto.phase == phaseStopped {
		e.mu.Unlock()
		return e.fail(gerrors.New(gerrors.Runtime, "auto mode is not active"))
	}

	req, err := e.buildRequest(buffer, cursor, cwd, sessionID)
	if err != nil {
		e.mu.Unlock()
		return e.fail(err.(*gerrors.Error))
	}

	e.auto.invalidateLocked()
	delay := e.auto.delay
	e.auto.pending = &req
	e.auto.deadline = time.Now().Add(delay)
	e.auto.phase = phasePending
	e.lastSuggestion = ""

	cycle := e.auto.cycle
	e.auto.timer = time.AfterFunc(delay, func() {
		e.fireDebounce(cycle)
	})
	e.mu.Unlock()

	return nil
}

// fireDebounce runs when a debounce deadline elapses. The cycle guard drops
// fires that were superseded by a later update, trigger, stop or restart.
func (e *Engine) fireDebounce(cycle uint64) {
	e.mu.Lock()
	if e.closed || cycle != e.auto.cycle || e.auto.phase != phasePending || e.auto.pending == nil {
		e.mu.Unlock()
		return
	}
	req := *e.auto.pending
	cb := e.auto.cb
	userData := e.auto.userData
	e.auto.pending = nil
	e.auto.timer = nil
	e.auto.phase = phaseArmed
	e.mu.Unlock()

	// Failures are delivered through the callback and recorded on the
	// handle; the machine is already re-armed for the next burst.
	_ = e.runPipeline(req, cb, userData, true)
}

// AutoTrigger forces immediate completion of the pending snapshot, skipping
// the rest of the debounce wait and cancelling the scheduled fire. Delivery
// uses the callback given here, not the one captured at AutoStart, for this
// one invocation only.
func (e *Engine) AutoTrigger(cb Callback, userData any) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	if cb == nil {
		return e.fail(gerrors.New(gerrors.NullPointer, "trigger callback is nil"))
	}

	e.mu.Lock()
	if e.auto.phase == phaseInactive || e.auto.phase == phaseStopped {
		e.mu.Unlock()
		return e.fail(gerrors.New(gerrors.Runtime, "auto mode is not active"))
	}
	if e.auto.pending == nil {
		e.mu.Unlock()
		return e.fail(gerrors.New(gerrors.Runtime, "no pending completion to trigger"))
	}
	req := *e.auto.pending
	e.auto.invalidateLocked()
	e.auto.pending = nil
	e.auto.phase = phaseArmed
	e.mu.Unlock()

	return e.runPipeline(req, cb, userData, true)
}

// AutoStop ends the current live-typing cycle: the timer is cancelled and
// the pending snapshot discarded. Idempotent.
func (e *Engine) AutoStop() error {
	if err := e.checkOpen(); err != nil {
		return err
	}

	e.mu.Lock()
	e.auto.invalidateLocked()
	e.auto.pending = nil
	e.auto.deadline = time.Time{}
	e.auto.phase = phaseStopped
	e.lastSuggestion = ""
	e.mu.Unlock()

	return nil
}

// AutoIsActive reports whether live-typing mode is running (armed or
// pending). False for stopped, never-started and closed handles.
func (e *Engine) AutoIsActive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return false
	}
	return e.auto.phase == phaseArmed || e.auto.phase == phasePending
}

// AutoSuggestion returns the most recent successful auto-mode suggestion,
// for inline preview. Valid until the next auto-mode completion or buffer
// update overwrites it.
func (e *Engine) AutoSuggestion() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.lastSuggestion == "" {
		return "", false
	}
	return e.lastSuggestion, true
}

// AutoDelayMS returns the debounce delay of the current cycle, or the
// configured default when auto mode was never started.
func (e *Engine) AutoDelayMS() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.auto.delay > 0 {
		return uint32(e.auto.delay.Milliseconds())
	}
	if e.cfg.Trigger.AutoDelayMS > 0 {
		return e.cfg.Trigger.AutoDelayMS
	}
	return config.DefaultAutoDelayMS
}
