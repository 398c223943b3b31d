package llm

import (
	"context"
	"fmt"
)

// New builds the configured client, wrapped with retries.
func New(ctx context.Context, cfg Config) (Client, error) {
	var (
		base Client
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = newAnthropicClient(cfg)
	case ProviderOpenAI:
		base, err = newOpenAIClient(cfg)
	case ProviderGemini:
		base, err = newGeminiClient(ctx, cfg)
	case ProviderOpenRouter:
		base, err = newOpenRouterClient(cfg)
	case ProviderScript:
		return NewScripted(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("configure %s: %w", cfg.Provider, err)
	}
	return WithRetry(base, cfg.Retry), nil
}

// OpenDefault builds a client from the environment: DRILL_ variables
// first, the providers' own conventional key variables as a fallback.
func OpenDefault(ctx context.Context) (Client, error) {
	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		found, ok := Discover()
		if !ok {
			return nil, err
		}
		cfg = found
	}
	return New(ctx, cfg)
}
