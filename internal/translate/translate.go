package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// single localization string to translate
type TranslationItem struct {
	Index int    `json:"index"`
	Key   string `json:"key,omitempty"`
	Text  string `json:"text"`
}

// translated localization string
type TranslationResult struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// contextual details for translating a single key
type Context struct {
	Key        string
	SourceText string
	Meaning    string
	Comment    string
	Category   string
	// existing translations in other languages, keyed by language code
	References map[string]string
}

// interface for localization translation
type Translator interface {
	Translate(
		ctx context.Context,
		items []TranslationItem,
	) ([]TranslationResult, error)
	TranslateOne(ctx context.Context, tctx Context) (string, error)
	Close() error
}

// translation service provider
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGemini    Provider = "gemini"
	ProviderGrok      Provider = "grok"
)

func ParseProvider(s string) (Provider, error) {
	switch Provider(strings.ToLower(s)) {
	case ProviderOpenAI:
		return ProviderOpenAI, nil
	case ProviderAnthropic, Provider("claude"):
		return ProviderAnthropic, nil
	case ProviderGemini, Provider("google"):
		return ProviderGemini, nil
	case ProviderGrok, Provider("xai"):
		return ProviderGrok, nil
	default:
		return "", fmt.Errorf(
			"unsupported translation provider: %s (use openai, anthropic, gemini, or grok)",
			s,
		)
	}
}

// Display renders the provider as a user-facing name.
func (p Provider) Display() string {
	switch p {
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderAnthropic:
		return "Claude"
	case ProviderGemini:
		return "Google Gemini"
	case ProviderGrok:
		return "Grok"
	default:
		return string(p)
	}
}

type Options struct {
	SourceLanguage string
	TargetLanguage string
	Model          string
	BaseURL        string
	Prompt         string
	BatchSize      int // items per API request (default 50)
}

const DefaultBatchSize = 50

// creates Translator based on provider
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Translator, error) {
	if opts.TargetLanguage == "" {
		return nil, fmt.Errorf("target language is required")
	}

	switch provider {
	case ProviderOpenAI:
		return NewOpenAITranslator(ctx, apiKey, opts)
	case ProviderAnthropic:
		return NewAnthropicTranslator(ctx, apiKey, opts)
	case ProviderGemini:
		return NewGeminiTranslator(ctx, apiKey, opts)
	case ProviderGrok:
		return NewGrokTranslator(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported translation provider: %s", provider)
	}
}

// BuildBatchPrompt creates the multi-item translation prompt for LLM
// providers. Keys travel with the items so the model can use them as
// context, but only text is translated.
func BuildBatchPrompt(opts Options, items []TranslationItem) string {
	var sb strings.Builder

	if opts.SourceLanguage != "" {
		sb.WriteString(fmt.Sprintf(
			"Translate the following %s iOS app localization strings to %s.\n\n",
			DisplayName(opts.SourceLanguage),
			DisplayName(opts.TargetLanguage),
		))
	} else {
		sb.WriteString(fmt.Sprintf(
			"Translate the following iOS app localization strings to %s.\n\n",
			DisplayName(opts.TargetLanguage),
		))
	}

	sb.WriteString("IMPORTANT INSTRUCTIONS:\n")
	sb.WriteString(
		"1. Translate ONLY the 'text' content, preserving the meaning.\n",
	)
	sb.WriteString(
		"2. Keep format placeholders (%@, %d, %lld, %1$@, {}) unchanged.\n",
	)
	sb.WriteString(
		"3. The 'key' fields are context only. Never translate or return them.\n",
	)
	sb.WriteString("4. Return ONLY a JSON array with the same structure.\n")
	sb.WriteString("5. Each object must have 'index' and 'text' fields.\n")
	sb.WriteString(
		"6. The 'index' values must match the input indices exactly.\n",
	)
	sb.WriteString("7. Do not add any explanation or markdown formatting.\n\n")

	if opts.Prompt != "" {
		sb.WriteString(
			fmt.Sprintf("Additional instructions: %s\n\n", opts.Prompt),
		)
	}

	sb.WriteString("Input JSON:\n")

	inputJSON, _ := json.MarshalIndent(items, "", "  ")
	sb.Write(inputJSON)

	sb.WriteString("\n\nOutput the translated JSON array only:")

	return sb.String()
}

// BuildContextPrompt creates the single-key translation prompt, enriched
// with everything known about the key.
func BuildContextPrompt(opts Options, tctx Context) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(
		"Translate the following iOS app localization string to %s.\n\n",
		DisplayName(opts.TargetLanguage),
	))

	var contextParts []string
	if tctx.Key != "" {
		contextParts = append(contextParts, fmt.Sprintf("Key: %s", tctx.Key))
	}
	if tctx.Meaning != "" {
		contextParts = append(
			contextParts,
			fmt.Sprintf("Meaning: %s", tctx.Meaning),
		)
	}
	if tctx.Comment != "" {
		contextParts = append(
			contextParts,
			fmt.Sprintf("Comment: %s", tctx.Comment),
		)
	}
	if tctx.Category != "" {
		contextParts = append(
			contextParts,
			fmt.Sprintf("Usage: %s", tctx.Category),
		)
	}
	if len(tctx.References) > 0 {
		contextParts = append(contextParts, "Reference translations:")
		langs := make([]string, 0, len(tctx.References))
		for lang := range tctx.References {
			langs = append(langs, lang)
		}
		sort.Strings(langs)
		for _, lang := range langs {
			contextParts = append(contextParts, fmt.Sprintf(
				"  - %s: %q",
				DisplayName(lang),
				tctx.References[lang],
			))
		}
	}

	if len(contextParts) > 0 {
		sb.WriteString("Translation context:\n")
		sb.WriteString(strings.Join(contextParts, "\n"))
		sb.WriteString("\n\n")
	}

	sb.WriteString(fmt.Sprintf("Source text: %q\n\n", tctx.SourceText))

	sb.WriteString("Requirements:\n")
	sb.WriteString(
		"- Keep the translation natural and appropriate for mobile app users\n",
	)
	sb.WriteString(
		"- Preserve format placeholders (%@, %d, %lld, %1$@, {}) exactly\n",
	)
	sb.WriteString("- Use commonly accepted translations for technical terms\n")
	sb.WriteString(
		"- Keep brand names unchanged unless an official localized form exists\n",
	)
	if len(tctx.References) > 0 {
		sb.WriteString(
			"- Stay consistent with the style of the reference translations\n",
		)
	}
	if tctx.Category != "" {
		sb.WriteString(
			"- Match the tone and formality expected for this usage\n",
		)
	}
	if opts.Prompt != "" {
		sb.WriteString(fmt.Sprintf("- %s\n", opts.Prompt))
	}

	sb.WriteString("\nProvide only the translated text, no explanations.")

	return sb.String()
}

// TestConnection verifies the provider works end to end by translating
// a known string. Returns the translation on success.
func TestConnection(ctx context.Context, translator Translator) (string, error) {
	results, err := translator.Translate(ctx, []TranslationItem{
		{Index: 0, Text: "Hello, world!"},
	})
	if err != nil {
		return "", err
	}
	if len(results) == 0 || results[0].Text == "" {
		return "", fmt.Errorf("provider returned an empty translation")
	}
	return results[0].Text, nil
}
