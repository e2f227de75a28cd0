// Package safety detects destructive shell commands so suggestions can carry
// a warning before the user accepts them.
package safety

import (
	"regexp"
)

type rule struct {
	pattern *regexp.Regexp
	message string
}

var builtinRules = []rule{
	// Recursive deletion of root or home
	{regexp.MustCompile(`rm\s+(-[rfRF]+\s+)*(/|~|\$HOME)\s*$`), "This command will recursively delete the root/home directory"},
	{regexp.MustCompile(`rm\s+(-[rfRF]+\s+)+\*\s*$`), "This command will recursively delete all files"},
	{regexp.MustCompile(`rm\s+-rf\s+/\s*$`), "This command will destroy your system"},

	// Disk formatting
	{regexp.MustCompile(`mkfs\.\w+\s+`), "This command will format a disk, destroying all data"},
	{regexp.MustCompile(`dd\s+if=.*of=/dev/(?:sd|nvme|hd)`), "This command may overwrite disk data"},

	// Fork bomb
	{regexp.MustCompile(`:\(\)\s*\{\s*:\|:&\s*\}`), "This is a fork bomb that will crash your system"},

	// Chmod dangerous permissions
	{regexp.MustCompile(`chmod\s+(-R\s+)?777\s+/`), "Setting 777 permissions on root is a security risk"},

	// Piping untrusted downloads into a shell
	{regexp.MustCompile(`curl\s+.*\|\s*(ba)?sh`), "Piping untrusted content to shell is dangerous"},

	// Overwriting important files
	{regexp.MustCompile(`>\s*/etc/passwd`), "This will destroy the password file"},
	{regexp.MustCompile(`>\s*/etc/shadow`), "This will destroy the shadow password file"},

	// Kill all processes
	{regexp.MustCompile(`kill\s+-9\s+-1`), "This will kill all processes"},
	{regexp.MustCompile(`pkill\s+-9\s+.`), "This may kill important processes"},
}

// Check reports whether command matches a built-in or custom dangerous
// pattern. The returned warning is empty when the command looks safe.
// Custom patterns that fail to compile are skipped.
func Check(command string, customPatterns []string) (string, bool) {
	for _, r := range builtinRules {
		if r.pattern.MatchString(command) {
			return r.message, true
		}
	}

	for _, p := range customPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			continue
		}
		if re.MatchString(command) {
			return "This command matches a custom dangerous pattern", true
		}
	}

	return "", false
}
