package llm

const openRouterEndpoint = "https://openrouter.ai/api/v1"

// newOpenRouterClient targets OpenRouter's OpenAI-compatible API. It
// is the openai client pointed at a different endpoint, so BaseURL
// still wins when the config sets one.
func newOpenRouterClient(cfg Config) (*openaiClient, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = openRouterEndpoint
	}
	cfg.Provider = ProviderOpenRouter
	return newOpenAIClient(cfg)
}
