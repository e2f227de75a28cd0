package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WatchParams contains parameters for the Watch command.
type WatchParams struct {
	ConfigPath string
	LogLevel   string
	DelayMS    uint32 // zero means the configured delay
	CWD        string
	SessionID  string
	In         io.Reader
	Out        io.Writer
	ErrOut     io.Writer
}

// Watch runs live-typing mode against stdin: every input line becomes a
// buffer update, and suggestions print as the debounce fires. Intended for
// trying out trigger.auto_delay_ms settings before wiring a shell in.
func Watch(params WatchParams) error {
	if params.In == nil {
		params.In = os.Stdin
	}
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

	cb := func(suggestion, warning, errMsg string, _ any) {
		if errMsg != "" {
			fmt.Fprintf(params.ErrOut, "Error: %s\n", errMsg)
			return
		}
		if warning != "" {
			fmt.Fprintf(params.ErrOut, "⚠ %s\n", warning)
		}
		fmt.Fprintf(params.Out, "→ %s\n", suggestion)
	}

	if err := eng.AutoStart(params.DelayMS, cb, nil); err != nil {
		return err
	}

	cwd := resolveCwd(params.CWD)
	scanner := bufio.NewScanner(params.In)
	for scanner.Scan() {
		line := scanner.Text()
		if err := eng.AutoUpdateBuffer(line, len(line), cwd, params.SessionID); err != nil {
			fmt.Fprintf(params.ErrOut, "Error: %v\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	// Flush whatever the debounce still holds before shutting down.
	_ = eng.AutoTrigger(cb, nil)
	return eng.AutoStop()
}
