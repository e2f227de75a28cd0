package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/vmorelle/ghostline/pkg/config"
)

type anthropicClient struct {
	client *anthropic.Client
	model  string
}

func newAnthropicClient(cfg *config.Config) (*anthropicClient, error) {
	options := []option.RequestOption{}

	if key := cfg.ResolveAPIKey(); key != "" {
		options = append(options, option.WithAPIKey(key))
	}
	options = append(options, option.WithRequestTimeout(cfg.Timeout()))

	c := anthropic.NewClient(options...)
	return &anthropicClient{client: &c, model: cfg.Model.Name}, nil
}

func (a *anthropicClient) Complete(ctx context.Context, system, user string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
		Temperature: anthropic.Float(temperature),
	}

	resp, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}

	var text string
	for _, content := range resp.Content {
		if block, ok := content.AsAny().(anthropic.TextBlock); ok {
			text += block.Text
		}
	}
	return text, nil
}
