package status

import (
	"fmt"
	"os"

	"github.com/vmorelle/ghostline/pkg/config"
	"github.com/vmorelle/ghostline/pkg/version"
)

// Collect gathers doctor information for the given config path. An empty
// path means the default location. A missing or invalid file is reported,
// not treated as a collection failure; defaults fill the rest of the report.
func Collect(configPath string) (*Data, error) {
	data := &Data{
		Version:   version.Version,
		GitCommit: version.GitCommit,
		BuildTime: version.BuildTime,
	}

	if configPath == "" {
		configPath = config.DefaultPath()
	}
	data.ConfigPath = configPath

	if _, err := os.Stat(configPath); err == nil {
		data.ConfigExists = true
	}

	cfg := config.Default()
	if data.ConfigExists {
		result, err := config.ValidateFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to validate config: %w", err)
		}
		data.ConfigValid = result.Valid
		for _, e := range result.Errors {
			data.ConfigErrors = append(data.ConfigErrors, fmt.Sprintf("%s: %s", e.Field, e.Message))
		}

		if result.Valid {
			loaded, err := config.Load(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
		}
	} else {
		// Running on built-in defaults is a valid setup.
		data.ConfigValid = true
	}

	data.Provider = cfg.Model.Provider
	data.Model = cfg.Model.Name
	data.Endpoint = cfg.Model.Endpoint
	data.APIKeySet = cfg.ResolveAPIKey() != ""
	data.TimeoutMS = cfg.Model.TimeoutMS
	data.AutoDelayMS = cfg.Trigger.AutoDelayMS
	data.Sanitize = cfg.Privacy.Sanitize
	data.BlockDangerous = cfg.Privacy.BlockDangerous
	data.IncludeCwdListing = cfg.Context.IncludeCwdListing
	data.LogLevel = cfg.Log.Level

	return data, nil
}
