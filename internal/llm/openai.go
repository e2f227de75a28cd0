package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/vmorelle/ghostline/pkg/config"
)

// openAIClient talks to OpenAI or any openai-compatible chat completions
// endpoint (the endpoint override covers local inference servers).
type openAIClient struct {
	client *openai.Client
	model  string
}

func newOpenAIClient(cfg *config.Config) (*openAIClient, error) {
	options := []option.RequestOption{}

	if key := cfg.ResolveAPIKey(); key != "" {
		options = append(options, option.WithAPIKey(key))
	}
	if cfg.Model.Endpoint != "" {
		options = append(options, option.WithBaseURL(cfg.Model.Endpoint))
	}
	options = append(options, option.WithRequestTimeout(cfg.Timeout()))

	c := openai.NewClient(options...)
	return &openAIClient{client: &c, model: cfg.Model.Name}, nil
}

func (o *openAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		MaxTokens:   openai.Int(maxTokens),
		Temperature: openai.Float(temperature),
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
