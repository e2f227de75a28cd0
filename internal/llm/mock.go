package llm

import "context"

// Mock is a canned client for tests and the mock provider. When Fn is set it
// drives the response; otherwise Response/Err are returned as-is.
type Mock struct {
	Response string
	Err      error
	Fn       func(ctx context.Context, system, user string) (string, error)

	// Calls records every (system, user) pair received.
	Calls [][2]string
}

func (m *Mock) Complete(ctx context.Context, system, user string) (string, error) {
	m.Calls = append(m.Calls, [2]string{system, user})
	if m.Fn != nil {
		return m.Fn(ctx, system, user)
	}
	return m.Response, m.Err
}
