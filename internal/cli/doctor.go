package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/vmorelle/ghostline/internal/status"
)

// Doctor displays the Ghostline health report for the given config path.
func Doctor(configPath string, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}

	data, err := status.Collect(configPath)
	if err != nil {
		return fmt.Errorf("failed to collect status data: %w", err)
	}

	fmt.Fprintln(out, status.Render(data))
	return nil
}
