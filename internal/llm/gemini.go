package llm

import (
	"context"
	"encoding/json"
	"errors"

	"google.golang.org/genai"
)

var geminiAliases = map[string]string{
	"gemini-flash": "gemini-2.0-flash",
	"gemini-pro":   "gemini-2.0-pro",
}

type geminiClient struct {
	api   *genai.Client
	model string
}

func newGeminiClient(ctx context.Context, cfg Config) (*geminiClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("missing API key")
	}
	api, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &geminiClient{
		api:   api,
		model: pickModel(cfg.Model, geminiAliases, defaultModels[ProviderGemini]),
	}, nil
}

func (c *geminiClient) Model() string { return c.model }

func (c *geminiClient) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(p.MaxTokens),
	}
	if p.Temperature > 0 {
		temp := float32(p.Temperature)
		cfg.Temperature = &temp
	}
	if p.System != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: p.System}},
		}
	}
	if p.Shape != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = geminiSchema(p.Shape.Schema)
	}

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: p.User}},
	}}

	result, err := c.api.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		te := &TransportError{Provider: ProviderGemini, Err: err}
		var apiErr *genai.APIError
		if errors.As(err, &apiErr) {
			te.Status = apiErr.Code
		}
		return nil, te
	}

	raw := json.RawMessage(result.Text())
	if len(result.Candidates) > 0 && result.Candidates[0].FinishReason == "MAX_TOKENS" {
		return nil, &MalformedReplyError{Raw: raw, Truncated: true}
	}
	if err := p.Shape.Check(raw); err != nil {
		return nil, err
	}

	out := &Completion{JSON: raw, Model: c.model}
	if u := result.UsageMetadata; u != nil {
		out.Tokens = TokenCount{
			Prompt: int(u.PromptTokenCount),
			Reply:  int(u.CandidatesTokenCount),
		}
	}
	return out, nil
}

// geminiSchema translates the shape's JSON Schema map into the SDK's
// typed schema. Only the keywords the question shape uses are carried:
// type, description, properties, required, enum, items.
func geminiSchema(def map[string]any) *genai.Schema {
	out := &genai.Schema{}

	if t, ok := def["type"].(string); ok {
		out.Type = geminiType(t)
	}
	if desc, ok := def["description"].(string); ok {
		out.Description = desc
	}
	if props, ok := def["properties"].(map[string]any); ok {
		out.Properties = make(map[string]*genai.Schema, len(props))
		for name, sub := range props {
			if m, ok := sub.(map[string]any); ok {
				out.Properties[name] = geminiSchema(m)
			}
		}
	}
	out.Required = stringList(def["required"])
	out.Enum = stringList(def["enum"])
	if items, ok := def["items"].(map[string]any); ok {
		out.Items = geminiSchema(items)
	}
	return out
}

func geminiType(t string) genai.Type {
	switch t {
	case "object":
		return genai.TypeObject
	case "array":
		return genai.TypeArray
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}

func stringList(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
