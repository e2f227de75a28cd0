package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/vmorelle/ghostline/pkg/config"
)

// Validate checks a Ghostline configuration file against the schema and
// prints the result. A non-nil error means the file could not be checked;
// schema violations are reported in the output, not as errors.
func Validate(configPath string, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}
	if configPath == "" {
		configPath = config.DefaultPath()
	}

	fmt.Fprintf(out, "Validating: %s\n\n", configPath)

	result, err := config.ValidateFile(configPath)
	if err != nil {
		return err
	}

	if result.Valid {
		fmt.Fprintln(out, "✓ Configuration is valid")
		return nil
	}

	fmt.Fprintf(out, "✗ Found %d issue(s):\n", len(result.Errors))
	for _, e := range result.Errors {
		fmt.Fprintf(out, "  • %s: %s\n", e.Field, e.Message)
	}
	return fmt.Errorf("configuration is invalid")
}
