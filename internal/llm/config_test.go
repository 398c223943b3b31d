package llm

import (
	"testing"
	"time"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	vars := []string{
		"DRILL_LLM_PROVIDER",
		"DRILL_ANTHROPIC_API_KEY", "DRILL_OPENAI_API_KEY",
		"DRILL_GEMINI_API_KEY", "DRILL_OPENROUTER_API_KEY",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY",
		"GEMINI_API_KEY", "OPENROUTER_API_KEY",
	}
	for _, v := range vars {
		t.Setenv(v, "")
	}
}

func TestFromEnvDefaultsToAnthropic(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("DRILL_ANTHROPIC_API_KEY", "sk-ant-test")

	cfg := FromEnv()
	if cfg.Provider != ProviderAnthropic {
		t.Fatalf("expected anthropic, got %q", cfg.Provider)
	}
	if cfg.APIKey != "sk-ant-test" {
		t.Fatalf("unexpected key: %q", cfg.APIKey)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.Timeout)
	}
}

func TestFromEnvReadsSelectedProviderVars(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("DRILL_LLM_PROVIDER", "openai")
	t.Setenv("DRILL_OPENAI_API_KEY", "sk-oai-test")
	t.Setenv("DRILL_OPENAI_MODEL", "gpt-4o")
	t.Setenv("DRILL_OPENAI_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("DRILL_ANTHROPIC_API_KEY", "sk-ant-ignored")

	cfg := FromEnv()
	if cfg.Provider != ProviderOpenAI {
		t.Fatalf("expected openai, got %q", cfg.Provider)
	}
	if cfg.APIKey != "sk-oai-test" || cfg.Model != "gpt-4o" || cfg.BaseURL != "http://localhost:8080/v1" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestDiscoverPrefersGemini(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("GEMINI_API_KEY", "gm-test")
	t.Setenv("OPENAI_API_KEY", "sk-oai-test")

	cfg, ok := Discover()
	if !ok {
		t.Fatal("expected a discovered config")
	}
	if cfg.Provider != ProviderGemini {
		t.Fatalf("expected gemini first, got %q", cfg.Provider)
	}
}

func TestDiscoverFindsNothingWithoutKeys(t *testing.T) {
	clearProviderEnv(t)
	if _, ok := Discover(); ok {
		t.Fatal("expected no config without any keys set")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic with key", Config{Provider: ProviderAnthropic, APIKey: "k"}, false},
		{"anthropic without key", Config{Provider: ProviderAnthropic}, true},
		{"scripted needs no key", Config{Provider: ProviderScript}, false},
		{"unknown provider", Config{Provider: "cohere", APIKey: "k"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPickModel(t *testing.T) {
	aliases := map[string]string{"fast": "model-v2-fast"}
	tests := []struct {
		name, want string
	}{
		{"", "fast-default"},
		{"fast", "model-v2-fast"},
		{"model-v3-exp", "model-v3-exp"},
	}
	for _, tt := range tests {
		if got := pickModel(tt.name, aliases, "fast-default"); got != tt.want {
			t.Errorf("pickModel(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
