package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient talks to the Anthropic API. It covers the chat path
// only; image requests report ErrImageUnsupported so the caller falls
// back to a placeholder.
type AnthropicClient struct {
	client anthropic.Client
}

// NewAnthropicClient creates an Anthropic adapter.
func NewAnthropicClient(config Config) (*AnthropicClient, error) {
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY not set")
	}

	return &AnthropicClient{client: anthropic.NewClient(option.WithAPIKey(apiKey))}, nil
}

func (c *AnthropicClient) Name() string {
	return "anthropic"
}

func (c *AnthropicClient) IsAvailable() bool {
	return os.Getenv("ANTHROPIC_API_KEY") != ""
}

func (c *AnthropicClient) Complete(ctx context.Context, systemPrompt, userPrompt string, profile Profile) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(profile.AnthropicModel),
		MaxTokens: int64(profile.MaxTokens),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	var output string
	for _, block := range resp.Content {
		if block.Type == "text" {
			output += block.Text
		}
	}
	return output, nil
}

func (c *AnthropicClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	return "", ErrImageUnsupported
}
