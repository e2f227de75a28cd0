// Package cli implements the Ghostline command-line commands.
package cli

import (
	"fmt"
	"os"

	"github.com/vmorelle/ghostline/internal/logger"
	"github.com/vmorelle/ghostline/pkg/config"
	"github.com/vmorelle/ghostline/pkg/engine"
	"github.com/vmorelle/ghostline/pkg/suggest"
)

// newEngine builds a session engine for a CLI invocation. A non-empty
// logLevel overrides the configured level, so --log-level works without
// touching the config file.
func newEngine(configPath, logLevel string) (*engine.Engine, error) {
	var cfg *config.Config
	var err error
	if configPath == "" {
		cfg, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(configPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	log := logger.New(cfg.Log.Level, nil)
	backend, err := suggest.NewEngine(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create suggestion backend: %w", err)
	}

	return engine.New(cfg, backend, log), nil
}

// resolveCwd returns dir, or the process working directory when dir is
// empty.
func resolveCwd(dir string) string {
	if dir != "" {
		return dir
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return cwd
}
