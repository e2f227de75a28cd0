package cli

import (
	"fmt"
	"io"
	"os"
)

// CompleteParams contains parameters for the Complete command.
type CompleteParams struct {
	ConfigPath string
	LogLevel   string
	Buffer     string
	Cursor     int // negative means end of buffer
	CWD        string
	SessionID  string
	Out        io.Writer
	ErrOut     io.Writer
}

// Complete runs one synchronous completion and prints the suggested command.
// A danger warning goes to stderr so shell substitution only captures the
// command itself.
func Complete(params CompleteParams) error {
	if params.Out == nil {
		params.Out = os.Stdout
	}
	if params.ErrOut == nil {
		params.ErrOut = os.Stderr
	}

	eng, err := newEngine(params.ConfigPath, params.LogLevel)
	if err != nil {
		return err
	}
	defer eng.Close()

	cursor := params.Cursor
	if cursor < 0 {
		cursor = len(params.Buffer)
	}

	return eng.Complete(params.Buffer, cursor, resolveCwd(params.CWD), params.SessionID,
		func(suggestion, warning, errMsg string, _ any) {
			if errMsg != "" {
				fmt.Fprintf(params.ErrOut, "Error: %s\n", errMsg)
				return
			}
			if warning != "" {
				fmt.Fprintf(params.ErrOut, "⚠ %s\n", warning)
			}
			fmt.Fprintln(params.Out, suggestion)
		}, nil)
}
