package translate

import (
	"context"
)

const grokBaseURL = "https://api.x.ai/v1"

// Grok serves an OpenAI-compatible chat completions API, so the
// translator is an OpenAI client pointed at the x.ai endpoint.
func NewGrokTranslator(
	ctx context.Context,
	apiKey string,
	opts Options,
) (*OpenAITranslator, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = grokBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel(ProviderGrok)
	}
	return NewOpenAITranslator(ctx, apiKey, opts)
}
