package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiSchemaFromQuestionShape(t *testing.T) {
	got := geminiSchema(questionShape.Schema)

	if got.Type != genai.TypeObject {
		t.Fatalf("expected object type, got %v", got.Type)
	}
	if len(got.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(got.Properties))
	}

	options := got.Properties["options"]
	if options == nil || options.Type != genai.TypeArray {
		t.Fatalf("expected options to be an array, got %+v", options)
	}
	if options.Items == nil || options.Items.Type != genai.TypeString {
		t.Fatal("expected options items to be strings")
	}

	answer := got.Properties["answer"]
	if answer == nil {
		t.Fatal("expected an answer property")
	}
	if len(answer.Enum) != 4 || answer.Enum[0] != "A" || answer.Enum[3] != "D" {
		t.Fatalf("expected the A-D answer letters, got %v", answer.Enum)
	}

	if len(got.Required) != 3 {
		t.Fatalf("expected 3 required fields, got %v", got.Required)
	}
}

func TestGeminiSchemaUnknownTypeFallsBackToString(t *testing.T) {
	got := geminiSchema(map[string]any{"type": "null"})
	if got.Type != genai.TypeString {
		t.Fatalf("expected string fallback, got %v", got.Type)
	}
}

func TestGeminiModelAliases(t *testing.T) {
	tests := []struct {
		configured string
		want       string
	}{
		{"", "gemini-2.0-flash"},
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-1.5-flash-8b", "gemini-1.5-flash-8b"},
	}
	for _, tt := range tests {
		got := pickModel(tt.configured, geminiAliases, defaultModels[ProviderGemini])
		if got != tt.want {
			t.Errorf("model %q resolved to %q, want %q", tt.configured, got, tt.want)
		}
	}
}
