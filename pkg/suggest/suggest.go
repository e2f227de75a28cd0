// Package suggest implements the suggestion backend: it turns a completion
// request into a suggested command line, with an optional danger warning.
package suggest

import (
	"context"
)

// Request is one completion request.
type Request struct {
	Buffer    string
	Cursor    int
	CWD       string
	SessionID string
}

// Suggestion is a successful backend result. Warning is non-empty when the
// suggested command looks destructive.
type Suggestion struct {
	Command string
	Warning string
}

// Backend produces suggestions. Implementations must be safe for concurrent
// use; the engine serializes calls per handle but multiple handles may share
// one backend.
type Backend interface {
	Suggest(ctx context.Context, req Request) (*Suggestion, error)
}

// Func adapts a function to the Backend interface.
type Func func(ctx context.Context, req Request) (*Suggestion, error)

// Suggest calls f.
func (f Func) Suggest(ctx context.Context, req Request) (*Suggestion, error) {
	return f(ctx, req)
}
