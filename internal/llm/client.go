// Package llm provides model clients for the suggestion backend.
package llm

import (
	"context"
	"fmt"

	"github.com/vmorelle/ghostline/pkg/config"
)

// Completion budget. Command lines are short; anything longer than this is
// the model rambling.
const (
	maxTokens   = 100
	temperature = 0.3
)

// Client sends one system/user prompt pair to a model and returns its raw
// text output.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// NewClient builds the client selected by the model configuration.
func NewClient(cfg *config.Config) (Client, error) {
	switch cfg.Model.Provider {
	case config.ProviderOpenAI:
		return newOpenAIClient(cfg)
	case config.ProviderAnthropic:
		return newAnthropicClient(cfg)
	case config.ProviderMock:
		return &Mock{}, nil
	default:
		return nil, fmt.Errorf("unknown model provider: %q", cfg.Model.Provider)
	}
}
