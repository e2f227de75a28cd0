package engine

import (
	"context"
	"unicode/utf8"

	"github.com/vmorelle/ghostline/pkg/gerrors"
	"github.com/vmorelle/ghostline/pkg/suggest"
)

// Complete performs one synchronous completion. The callback is invoked
// exactly once before Complete returns: with the suggestion and optional
// warning on success, or with only the error message on failure. The only
// cases that skip the callback are a closed handle and a nil callback, where
// there is nothing meaningful to call.
//
// An out-of-range cursor is clamped into [0, len(buffer)] rather than
// rejected.
func (e *Engine) Complete(buffer string, cursor int, cwd, sessionID string, cb Callback, userData any) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	if cb == nil {
		return e.fail(gerrors.New(gerrors.NullPointer, "completion callback is nil"))
	}

	req, err := e.buildRequest(buffer, cursor, cwd, sessionID)
	if err != nil {
		ge := err.(*gerrors.Error)
		e.fail(ge)
		e.invoke(cb, "", "", ge.Error(), userData)
		return ge
	}

	return e.runPipeline(req, cb, userData, false)
}

// buildRequest validates the text inputs and clamps the cursor.
func (e *Engine) buildRequest(buffer string, cursor int, cwd, sessionID string) (suggest.Request, error) {
	switch {
	case !utf8.ValidString(buffer):
		return suggest.Request{}, gerrors.New(gerrors.InvalidEncoding, "buffer is not valid UTF-8")
	case !utf8.ValidString(cwd):
		return suggest.Request{}, gerrors.New(gerrors.InvalidEncoding, "cwd is not valid UTF-8")
	case !utf8.ValidString(sessionID):
		return suggest.Request{}, gerrors.New(gerrors.InvalidEncoding, "session id is not valid UTF-8")
	}

	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(buffer) {
		cursor = len(buffer)
	}

	return suggest.Request{
		Buffer:    buffer,
		Cursor:    cursor,
		CWD:       cwd,
		SessionID: sessionID,
	}, nil
}

// runPipeline calls the backend and delivers the result through cb. At most
// one pipeline invocation runs per handle at a time, manual or autonomous.
// When fromAuto is set, a successful suggestion is published to the
// last-suggestion slot.
func (e *Engine) runPipeline(req suggest.Request, cb Callback, userData any, fromAuto bool) error {
	e.inflight.Lock()
	defer e.inflight.Unlock()

	result, err := e.backend.Suggest(context.Background(), req)
	if err != nil {
		ge := gerrors.Wrap(gerrors.Runtime, "completion failed", err)
		e.fail(ge)
		e.invoke(cb, "", "", ge.Error(), userData)
		return ge
	}

	if fromAuto {
		e.mu.Lock()
		if !e.closed {
			e.lastSuggestion = result.Command
		}
		e.mu.Unlock()
	}

	e.invoke(cb, result.Command, result.Warning, "", userData)
	return nil
}
