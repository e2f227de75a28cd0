package engine

import (
	"sync"

	"github.com/vmorelle/ghostline/pkg/gerrors"
)

// errorSlot holds the most recent failure at one scope. Writers race under
// concurrent manual and auto completions; last-writer-wins is fine because
// the slot is diagnostic. Readers always see one intact record, never a
// torn one.
type errorSlot struct {
	mu  sync.Mutex
	rec *errorRecord
}

type errorRecord struct {
	kind    gerrors.Kind
	message string
}

func (s *errorSlot) set(kind gerrors.Kind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = &errorRecord{kind: kind, message: message}
}

func (s *errorSlot) get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rec == nil {
		return "", false
	}
	return s.rec.message, true
}

func (s *errorSlot) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = nil
}

// globalErrors records failures that happen before or without a handle, such
// as configuration problems during Open.
var globalErrors errorSlot

// LastError returns the most recent handle-less failure. The returned string
// stays valid forever (strings are immutable); the slot itself is overwritten
// by the next handle-less failure.
func LastError() (string, bool) {
	return globalErrors.get()
}
