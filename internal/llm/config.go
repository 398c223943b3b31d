package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Providers drill can author questions with. "scripted" is the
// in-memory test double and never reads credentials.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderScript     = "scripted"
)

// defaultModels picks a cheap, fast model per provider. Authoring a
// multiple-choice question is a short structured task and does not
// need a frontier model.
var defaultModels = map[string]string{
	ProviderAnthropic:  "claude-haiku",
	ProviderOpenAI:     "gpt-4o-mini",
	ProviderGemini:     "gemini-flash",
	ProviderOpenRouter: "google/gemini-2.0-flash-exp",
}

// Config selects one provider and how to reach it.
type Config struct {
	Provider string
	APIKey   string

	// Model is a friendly alias or a raw provider model ID; empty
	// means the provider's default.
	Model string

	// BaseURL overrides the endpoint for OpenAI-compatible providers.
	BaseURL string

	Retry   RetryConfig
	Timeout time.Duration
}

// DefaultRetry allows two retries over a one second to ten second
// backoff window.
func DefaultRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseWait:    time.Second,
		MaxWait:     10 * time.Second,
	}
}

// FromEnv reads DRILL_LLM_PROVIDER plus the matching
// DRILL_<PROVIDER>_API_KEY, _MODEL and _BASE_URL variables. Anthropic
// is the default provider when none is named.
func FromEnv() Config {
	cfg := Config{
		Provider: ProviderAnthropic,
		Retry:    DefaultRetry(),
		Timeout:  30 * time.Second,
	}
	if p := os.Getenv("DRILL_LLM_PROVIDER"); p != "" {
		cfg.Provider = strings.ToLower(p)
	}

	prefix := "DRILL_" + strings.ToUpper(cfg.Provider) + "_"
	cfg.APIKey = os.Getenv(prefix + "API_KEY")
	cfg.Model = os.Getenv(prefix + "MODEL")
	cfg.BaseURL = os.Getenv(prefix + "BASE_URL")
	return cfg
}

// Discover checks the providers' own conventional key variables for
// users who never set any DRILL_ ones. Order favors the providers with
// free tiers.
func Discover() (Config, bool) {
	candidates := []struct {
		provider string
		envVar   string
	}{
		{ProviderGemini, "GEMINI_API_KEY"},
		{ProviderOpenAI, "OPENAI_API_KEY"},
		{ProviderAnthropic, "ANTHROPIC_API_KEY"},
		{ProviderOpenRouter, "OPENROUTER_API_KEY"},
	}
	for _, c := range candidates {
		if key := os.Getenv(c.envVar); key != "" {
			return Config{
				Provider: c.provider,
				APIKey:   key,
				Retry:    DefaultRetry(),
				Timeout:  30 * time.Second,
			}, true
		}
	}
	return Config{}, false
}

// Validate checks the provider is known and has a credential.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderAnthropic, ProviderOpenAI, ProviderGemini, ProviderOpenRouter:
		if c.APIKey == "" {
			return fmt.Errorf("no API key for %s: set DRILL_%s_API_KEY", c.Provider, strings.ToUpper(c.Provider))
		}
		return nil
	case ProviderScript:
		return nil
	default:
		return fmt.Errorf("unknown LLM provider %q", c.Provider)
	}
}

// pickModel resolves a friendly alias, passes raw model IDs through,
// and falls back to the provider default when name is empty.
func pickModel(name string, aliases map[string]string, fallback string) string {
	if name == "" {
		name = fallback
	}
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
