package llm

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient talks to the OpenAI API. It is the preferred backend
// because it covers both the chat and image paths.
type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient creates an OpenAI adapter.
func NewOpenAIClient(config Config) (*OpenAIClient, error) {
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not set")
	}

	return &OpenAIClient{client: openai.NewClient(apiKey)}, nil
}

func (c *OpenAIClient) Name() string {
	return "openai"
}

func (c *OpenAIClient) IsAvailable() bool {
	return os.Getenv("OPENAI_API_KEY") != ""
}

func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string, profile Profile) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       profile.OpenAIModel,
		MaxTokens:   profile.MaxTokens,
		Temperature: profile.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Prompt: prompt,
		Model:  openai.CreateImageModelDallE3,
		N:      1,
		Size:   openai.CreateImageSize1024x1024,
	})
	if err != nil {
		return "", fmt.Errorf("openai image error: %w", err)
	}
	if len(resp.Data) == 0 {
		return "", fmt.Errorf("openai returned no image")
	}
	return resp.Data[0].URL, nil
}
