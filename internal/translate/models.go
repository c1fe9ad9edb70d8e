package translate

// chat models known to work per provider, newest first
var knownModels = map[Provider][]string{
	ProviderOpenAI: {
		"gpt-5",
		"gpt-5-mini",
		"gpt-5-nano",
		"gpt-4.1",
		"gpt-4.1-mini",
		"gpt-4o",
		"gpt-4o-mini",
	},
	ProviderAnthropic: {
		"claude-opus-4-1",
		"claude-sonnet-4-5",
		"claude-haiku-4-5",
		"claude-3-5-haiku-latest",
	},
	ProviderGemini: {
		"gemini-2.5-pro",
		"gemini-2.5-flash",
		"gemini-2.5-flash-lite",
		"gemini-2.0-flash",
	},
	ProviderGrok: {
		"grok-4",
		"grok-4-fast",
		"grok-3",
		"grok-3-mini",
	},
}

var defaultModels = map[Provider]string{
	ProviderOpenAI:    "gpt-5-mini",
	ProviderAnthropic: "claude-haiku-4-5",
	ProviderGemini:    "gemini-2.5-flash",
	ProviderGrok:      "grok-3-mini",
}

// KnownModels lists the models selectable for a provider.
func KnownModels(provider Provider) []string {
	return knownModels[provider]
}

// DefaultModel returns the model used when none is configured.
func DefaultModel(provider Provider) string {
	return defaultModels[provider]
}

// IsKnownModel reports whether model is in the provider's known list.
// New models ship faster than this list updates, so callers should offer
// an override path.
func IsKnownModel(provider Provider, model string) bool {
	for _, known := range knownModels[provider] {
		if known == model {
			return true
		}
	}
	return false
}
