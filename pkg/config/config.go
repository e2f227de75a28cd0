// Package config handles loading and validation of Ghostline configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Supported providers for the model backend.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderMock      = "mock"
)

// ModelConfig describes the LLM endpoint used by the suggestion backend.
type ModelConfig struct {
	Provider  string `koanf:"provider"`    // openai, anthropic or mock
	Endpoint  string `koanf:"endpoint"`    // base URL for openai-compatible endpoints
	Name      string `koanf:"name"`        // model name
	APIKey    string `koanf:"api_key"`     // literal key; takes precedence over api_key_env
	APIKeyEnv string `koanf:"api_key_env"` // environment variable holding the key
	TimeoutMS uint64 `koanf:"timeout_ms"`  // per-request timeout
}

// TriggerConfig controls live-typing behavior.
type TriggerConfig struct {
	AutoDelayMS uint32 `koanf:"auto_delay_ms"` // debounce quiet period
}

// ContextConfig controls what surrounding state is offered to the model.
type ContextConfig struct {
	IncludeCwdListing bool `koanf:"include_cwd_listing"`
	MaxFilesInListing int  `koanf:"max_files_in_listing"`
}

// PrivacyConfig controls sanitization and dangerous-command detection.
type PrivacyConfig struct {
	Sanitize       bool     `koanf:"sanitize"`
	CustomPatterns []string `koanf:"custom_patterns"`
	BlockDangerous bool     `koanf:"block_dangerous"`
	CustomBlocked  []string `koanf:"custom_blocked"`
}

// LogConfig controls engine logging.
type LogConfig struct {
	Level string `koanf:"level"`
}

// Config is the full Ghostline configuration.
type Config struct {
	Model        ModelConfig   `koanf:"model"`
	Trigger      TriggerConfig `koanf:"trigger"`
	Context      ContextConfig `koanf:"context"`
	Privacy      PrivacyConfig `koanf:"privacy"`
	Log          LogConfig     `koanf:"log"`
	SystemPrompt string        `koanf:"system_prompt"`
}

// DefaultAutoDelayMS is the debounce delay used when none is configured.
const DefaultAutoDelayMS uint32 = 500

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			Provider:  ProviderOpenAI,
			Endpoint:  "https://api.openai.com/v1",
			Name:      "gpt-4o-mini",
			APIKeyEnv: "OPENAI_API_KEY",
			TimeoutMS: 5000,
		},
		Trigger: TriggerConfig{
			AutoDelayMS: DefaultAutoDelayMS,
		},
		Context: ContextConfig{
			IncludeCwdListing: true,
			MaxFilesInListing: 20,
		},
		Privacy: PrivacyConfig{
			Sanitize:       true,
			BlockDangerous: true,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "ghostline", "config.yml")
}

// parserFor picks a koanf parser based on the file extension.
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return kjson.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}
}

// Load reads a configuration file, layered over the defaults.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadDefault loads the config from the default path, falling back to the
// built-in defaults when no file exists there.
func LoadDefault() (*Config, error) {
	path := DefaultPath()
	if _, err := os.Stat(path); err != nil {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks semantic constraints the schema cannot express.
func (c *Config) Validate() error {
	switch c.Model.Provider {
	case ProviderOpenAI, ProviderAnthropic, ProviderMock:
	default:
		return fmt.Errorf("unknown model provider: %q", c.Model.Provider)
	}
	if c.Model.Provider != ProviderMock && c.Model.Name == "" {
		return fmt.Errorf("model.name is required for provider %s", c.Model.Provider)
	}
	if c.Model.TimeoutMS == 0 {
		return fmt.Errorf("model.timeout_ms must be positive")
	}
	if c.Context.MaxFilesInListing < 0 {
		return fmt.Errorf("context.max_files_in_listing must not be negative")
	}
	return nil
}

// ResolveAPIKey returns the configured API key, preferring the literal value
// over the environment variable. Empty means no key is available.
func (c *Config) ResolveAPIKey() string {
	if c.Model.APIKey != "" {
		return c.Model.APIKey
	}
	if c.Model.APIKeyEnv != "" {
		return os.Getenv(c.Model.APIKeyEnv)
	}
	return ""
}

// Timeout returns the model request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Model.TimeoutMS) * time.Millisecond
}

// AutoDelay returns the configured debounce delay, or the default when unset.
func (c *Config) AutoDelay() time.Duration {
	ms := c.Trigger.AutoDelayMS
	if ms == 0 {
		ms = DefaultAutoDelayMS
	}
	return time.Duration(ms) * time.Millisecond
}
