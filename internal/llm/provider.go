package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// ErrImageUnsupported is returned by backends that cannot render images.
var ErrImageUnsupported = errors.New("image generation not supported by this provider")

// ErrNoCredential indicates that no provider API key is configured at
// all. The serve command maps this to a hard 500.
var ErrNoCredential = errors.New("no provider credential configured - set OPENAI_API_KEY or ANTHROPIC_API_KEY")

// Client is the interface all provider adapters implement.
type Client interface {
	// Name returns the adapter identifier for logging.
	Name() string

	// IsAvailable checks if this adapter can be used (API key set).
	IsAvailable() bool

	// Complete sends a system and user prompt and returns the raw text.
	Complete(ctx context.Context, systemPrompt, userPrompt string, profile Profile) (string, error)

	// GenerateImage renders an image for the prompt and returns its URL.
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Config holds configuration for provider adapters.
type Config struct {
	// Provider forces a backend ("openai" or "anthropic"). Empty means
	// auto-detect by available credential, preferring openai because it
	// also covers the image path.
	Provider string `yaml:"provider"`

	// APIKey overrides the environment credential (optional).
	APIKey string `yaml:"api_key"`

	// Profile names the model profile to use.
	Profile string `yaml:"profile"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{Profile: DefaultProfileName}
}

// NewClient builds the configured or best available provider adapter.
func NewClient(config Config) (Client, error) {
	switch config.Provider {
	case "openai":
		return NewOpenAIClient(config)
	case "anthropic":
		return NewAnthropicClient(config)
	case "":
		if config.APIKey != "" || os.Getenv("OPENAI_API_KEY") != "" {
			return NewOpenAIClient(config)
		}
		if os.Getenv("ANTHROPIC_API_KEY") != "" {
			return NewAnthropicClient(config)
		}
		return nil, ErrNoCredential
	default:
		return nil, fmt.Errorf("unknown provider: %s", config.Provider)
	}
}
