package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"quotewiz/internal/llm"
	"quotewiz/internal/quote"
)

// RequestTimeout bounds each outbound provider call.
const RequestTimeout = 15 * time.Second

// PlaceholderImageURL is shown when image generation fails or the
// backend cannot render images. An image problem never fails a quote.
const PlaceholderImageURL = "https://placehold.co/1024x576?text=Preview+coming+soon"

// Generator produces quote specs through a provider. Transport errors
// propagate to the caller; malformed provider output does not.
type Generator struct {
	client   llm.Client
	throttle *llm.Throttle
	profile  llm.Profile
	logger   zerolog.Logger
}

// NewGenerator wires a generation gateway. The throttle is shared with
// the assistant so the call-rate floor holds across both.
func NewGenerator(client llm.Client, throttle *llm.Throttle, profile llm.Profile, logger zerolog.Logger) *Generator {
	return &Generator{client: client, throttle: throttle, profile: profile, logger: logger}
}

// GenerateQuoteSpec runs one generation call and normalizes the result.
// The returned spec always satisfies the field limits; only transport
// and rate failures surface as errors.
func (g *Generator) GenerateQuoteSpec(ctx context.Context, input quote.GenerateInput) (quote.QuoteSpec, error) {
	if err := g.throttle.Wait(ctx); err != nil {
		return quote.QuoteSpec{}, fmt.Errorf("rate limit wait: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	output, err := g.client.Complete(callCtx, quote.QuoteSystemPrompt, quote.BuildQuotePrompt(input), g.profile)
	if err != nil {
		return quote.QuoteSpec{}, fmt.Errorf("quote generation: %w", err)
	}

	spec := quote.ParseSpec(output, input)
	g.logger.Debug().Str("provider", g.client.Name()).Str("title", spec.Title).Msg("quote spec generated")
	return spec, nil
}

// GenerateImage renders the mock image for a spec. It never fails:
// any error, including an image-incapable backend, yields the
// placeholder URL.
func (g *Generator) GenerateImage(ctx context.Context, prompt string) string {
	if err := g.throttle.Wait(ctx); err != nil {
		return PlaceholderImageURL
	}

	callCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	url, err := g.client.GenerateImage(callCtx, prompt)
	if err != nil {
		g.logger.Debug().Err(err).Msg("image generation failed, using placeholder")
		return PlaceholderImageURL
	}
	return url
}
